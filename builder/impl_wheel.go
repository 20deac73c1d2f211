package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds a wheel over n vertices, n >= 4: vertex 0 is the center,
// vertices 1..n-1 form a ring C_{n-1} (edges (i, i+1), wrapping back to 1),
// and spokes (0, i) connect the center to every ring vertex.
//
// Complexity: O(n) vertices, O(2(n-1)) edges (doubled again when undirected).
func Wheel[W model.Weight](n int, opts ...Option[W]) (Result[W], error) {
	if n < minWheelNodes {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	ringSize := n - 1

	edges := make([]model.CopyableEdge[int, W], 0, 2*ringSize)
	for i := 1; i <= ringSize; i++ {
		next := i + 1
		if next > ringSize {
			next = 1
		}
		edges = appendPair(edges, cfg, i, next)
	}
	for i := 1; i <= ringSize; i++ {
		edges = appendPair(edges, cfg, 0, i)
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}
