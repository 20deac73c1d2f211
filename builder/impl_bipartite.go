package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodBipartite  = "CompleteBipartite"
	minBipartiteSide = 1
)

// CompleteBipartite builds K_{n1,n2}, n1, n2 >= 1: a left part of n1
// vertices (0..n1-1), a right part of n2 vertices (n1..n1+n2-1), and an
// edge (l, r) for every l in the left part and r in the right part.
//
// Complexity: O(n1+n2) vertices, O(n1*n2) edges.
func CompleteBipartite[W model.Weight](n1, n2 int, opts ...Option[W]) (Result[W], error) {
	if n1 < minBipartiteSide || n2 < minBipartiteSide {
		return Result[W]{}, fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
			methodBipartite, n1, n2, minBipartiteSide, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, n1*n2)
	for l := 0; l < n1; l++ {
		for r := n1; r < n1+n2; r++ {
			edges = appendPair(edges, cfg, l, r)
		}
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n1 + n2, Edges: edges}, nil
}
