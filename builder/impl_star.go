package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star over n vertices, n >= 2: vertex 0 is the center, and
// edges (0, i) connect it to each leaf i = 1..n-1.
//
// Complexity: O(n) vertices, O(n-1) spokes (doubled when undirected).
func Star[W model.Weight](n int, opts ...Option[W]) (Result[W], error) {
	if n < minStarNodes {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, n-1)
	for i := 1; i < n; i++ {
		edges = appendPair(edges, cfg, 0, i)
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}
