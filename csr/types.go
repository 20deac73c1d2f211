// Package csr: types.go declares the Graph type, its functional options,
// and the vertex/edge reference shapes it hands back through the model
// customization points.
//
// Graph's vertex reference type (VR) is VId itself: CSR rows are
// random-access, so there is no cheaper "reference into storage" than the
// id already is, and collapsing VR to VId avoids a pointless wrapper. Its
// edge reference type (ER) is model.EdgeTargetValue[VId, EV]: a CSR row
// never carries an explicit per-edge source id (the row index already is
// the source). dynamic.Graph uses the same edge-record shape; the sourced
// shapes are only used by user containers that store them.
package csr

import "github.com/katalvlaran/graphcore/model"

// Graph is a Compressed-Sparse-Row adjacency list over vertex id type VId,
// with optional edge value EV, vertex value VV, and graph value GV.
// Instantiate EV/VV/GV with model.NoValue to omit that payload.
type Graph[VId model.Integer, EV, VV, GV any] struct {
	rowIndex   []VId
	colIndex   []VId
	edgeValues []EV

	vertexValues []VV
	vertexCount  int64

	graphValue GV

	edgesLoaded bool
}

// Option configures a Graph before its first load.
type Option[VId model.Integer, EV, VV, GV any] func(*Graph[VId, EV, VV, GV])

// WithGraphValue sets the graph-level payload returned by GraphValue().
func WithGraphValue[VId model.Integer, EV, VV, GV any](v GV) Option[VId, EV, VV, GV] {
	return func(g *Graph[VId, EV, VV, GV]) { g.graphValue = v }
}

// WithVertexCount pre-sizes the vertex-value array to n, so LoadVertices
// calls before LoadEdges don't need to guess a final size. LoadEdges will
// still grow past n if an edge references a larger id.
func WithVertexCount[VId model.Integer, EV, VV, GV any](n int) Option[VId, EV, VV, GV] {
	return func(g *Graph[VId, EV, VV, GV]) {
		if int64(n) > g.vertexCount {
			g.vertexCount = int64(n)
		}
	}
}

// New returns an empty Graph. Call LoadEdges (and, optionally, LoadVertices
// in either order) to populate it.
func New[VId model.Integer, EV, VV, GV any](opts ...Option[VId, EV, VV, GV]) *Graph[VId, EV, VV, GV] {
	g := &Graph[VId, EV, VV, GV]{rowIndex: []VId{0}}
	for _, opt := range opts {
		opt(g)
	}
	if g.vertexCount > 0 {
		g.vertexValues = make([]VV, g.vertexCount)
	}
	return g
}

// Edge is the edge-record type CSR hands back from EdgesAt: a target id
// plus an optional value. Value is the zero value of EV when EV is
// model.NoValue.
type Edge[VId model.Integer, EV any] = model.EdgeTargetValue[VId, EV]
