package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds a simple cycle over n vertices (0, 1, ..., n-1), n >= 3:
// edges (i, i+1 mod n) for i = 0..n-1.
//
// Complexity: O(n) vertices, O(n) segments (doubled when undirected).
func Cycle[W model.Weight](n int, opts ...Option[W]) (Result[W], error) {
	if n < minCycleNodes {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, n)
	for i := 0; i < n; i++ {
		edges = appendPair(edges, cfg, i, (i+1)%n)
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}
