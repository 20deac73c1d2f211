package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete graph K_n over n vertices, n >= 1: an edge
// (i, j) for every pair i < j. With cfg.directed set, only the i->j arc is
// emitted per pair (a transitive tournament); otherwise both directions.
//
// Complexity: O(n) vertices, O(n^2) edges.
func Complete[W model.Weight](n int, opts ...Option[W]) (Result[W], error) {
	if n < minCompleteNodes {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = appendPair(edges, cfg, i, j)
		}
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}
