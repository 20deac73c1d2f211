package dynamic

import (
	"container/list"

	"github.com/katalvlaran/graphcore/model"
)

// InnerKind selects the row storage strategy a Graph resolves at
// construction time; see the package doc for the three kinds.
type InnerKind int

const (
	InnerVector InnerKind = iota
	InnerList
	InnerForwardList
)

// Edge is the inner-range element dynamic.Graph hands out: a target id plus
// a value, mirroring csr.Edge. Source is never stored explicitly since the
// outer row index already is the source (vertex-indexed adjacency list, the
// same design csr.Graph uses).
type Edge[VId model.Integer, EV any] = model.EdgeTargetValue[VId, EV]

// Graph is the vector-of-inner-range adjacency list: an outer, randomly
// accessed vector of rows, one per vertex, each row an inner range of Edge
// in the InnerKind its Graph was built with.
type Graph[VId model.Integer, EV, VV, GV any] struct {
	kind InnerKind

	vecRows  [][]Edge[VId, EV]
	listRows []*list.List

	vertexValues []VV
	graphValue   GV

	// pinned is set by WithVertexCount: once true, AddEdge/LoadEdges reject
	// any id outside the row count instead of growing. LoadVertices is not
	// restricted by it.
	pinned bool
}

// Option configures a Graph at construction time.
type Option[VId model.Integer, EV, VV, GV any] func(*Graph[VId, EV, VV, GV])

// WithInnerKind selects the row storage strategy. The default, if omitted,
// is InnerVector.
func WithInnerKind[VId model.Integer, EV, VV, GV any](k InnerKind) Option[VId, EV, VV, GV] {
	return func(g *Graph[VId, EV, VV, GV]) { g.kind = k }
}

// WithGraphValue attaches a graph-level payload, retrievable via GraphValue.
func WithGraphValue[VId model.Integer, EV, VV, GV any](v GV) Option[VId, EV, VV, GV] {
	return func(g *Graph[VId, EV, VV, GV]) { g.graphValue = v }
}

// WithVertexCount pins the graph's edges to n vertices: rows are pre-sized
// up front, and AddEdge/LoadEdges afterward reject any source or target id
// outside [0, n) with model.BadEdge rather than growing the graph to fit
// it. LoadVertices is not restricted by the pin: it still grows rows to fit
// the largest vertex id it is given. Omit this option to keep the default
// unpinned behavior, where rows grow on demand to fit whatever ids arrive.
func WithVertexCount[VId model.Integer, EV, VV, GV any](n int) Option[VId, EV, VV, GV] {
	return func(g *Graph[VId, EV, VV, GV]) {
		g.growRows(int64(n))
		g.pinned = true
	}
}

// New builds an empty Graph, applying opts in order.
func New[VId model.Integer, EV, VV, GV any](opts ...Option[VId, EV, VV, GV]) *Graph[VId, EV, VV, GV] {
	g := &Graph[VId, EV, VV, GV]{}
	for _, o := range opts {
		o(g)
	}
	return g
}
