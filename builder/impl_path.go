package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path over n vertices (0, 1, ..., n-1), n >= 2, with
// edges (i-1, i) for i = 1..n-1. cfg.directed decides whether each segment
// is emitted as one forward arc or as a symmetric pair.
//
// Complexity: O(n) vertices, O(n-1) segments (doubled when undirected).
func Path[W model.Weight](n int, opts ...Option[W]) (Result[W], error) {
	if n < minPathNodes {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]model.CopyableEdge[int, W], 0, n-1)
	for i := 1; i < n; i++ {
		edges = appendPair(edges, cfg, i-1, i)
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}

// appendPair appends (u, v) with a freshly drawn weight; when cfg is
// undirected it also appends (v, u) carrying the same weight, matching
// Symmetrize's convention.
func appendPair[W model.Weight](edges []model.CopyableEdge[int, W], cfg *builderConfig[W], u, v int) []model.CopyableEdge[int, W] {
	w := cfg.weightFn(cfg.rng)
	edges = append(edges, model.CopyableEdge[int, W]{Source: u, Target: v, Value: w})
	if !cfg.directed {
		edges = append(edges, model.CopyableEdge[int, W]{Source: v, Target: u, Value: w})
	}
	return edges
}
