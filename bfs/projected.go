package bfs

import "github.com/katalvlaran/graphcore/model"

// VerticesProjected wraps a View, applying vvf to each discovered vertex id
// before returning it — vertices_breadth_first_search(g, seed, vvf).
type VerticesProjected[VId model.Integer, Out any] struct {
	next func() (VId, bool)
	vvf  func(VId) Out
}

// NewVerticesProjected wraps base, an already-constructed View (New or
// NewUndirected), applying vvf to each vertex it discovers.
func NewVerticesProjected[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER], Out any](base *View[VId, ER, G], vvf func(VId) Out) *VerticesProjected[VId, Out] {
	return &VerticesProjected[VId, Out]{next: base.Next, vvf: vvf}
}

// Next returns vvf applied to the next discovered vertex id.
func (p *VerticesProjected[VId, Out]) Next() (Out, bool) {
	id, ok := p.next()
	if !ok {
		var zero Out
		return zero, false
	}
	return p.vvf(id), true
}

// EdgesProjected wraps a View, applying evf to each discovery-tree edge
// record before returning it — edges_breadth_first_search(g, seed, evf),
// mirroring views.IncidenceProjected's projection step.
type EdgesProjected[ER any, Out any] struct {
	next func() (ER, bool)
	evf  func(ER) Out
}

// NewEdgesProjected wraps base, an already-constructed View (New or
// NewUndirected), applying evf to each edge record it discovers.
func NewEdgesProjected[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER], Out any](base *View[VId, ER, G], evf func(ER) Out) *EdgesProjected[ER, Out] {
	return &EdgesProjected[ER, Out]{next: base.NextEdge, evf: evf}
}

// Next returns evf applied to the next discovered edge record.
func (p *EdgesProjected[ER, Out]) Next() (Out, bool) {
	e, ok := p.next()
	if !ok {
		var zero Out
		return zero, false
	}
	return p.evf(e), true
}

// SourcedEdgesProjected wraps a View, applying evf to each (from, edge)
// pair before returning it — sourced_edges_breadth_first_search(g, seed,
// evf).
type SourcedEdgesProjected[VId model.Integer, ER any, Out any] struct {
	next func() (SourcedEdge[VId, ER], bool)
	evf  func(SourcedEdge[VId, ER]) Out
}

// NewSourcedEdgesProjected wraps base, an already-constructed View (New or
// NewUndirected), applying evf to each (from, edge) pair it discovers.
func NewSourcedEdgesProjected[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER], Out any](base *View[VId, ER, G], evf func(SourcedEdge[VId, ER]) Out) *SourcedEdgesProjected[VId, ER, Out] {
	return &SourcedEdgesProjected[VId, ER, Out]{next: base.NextSourcedEdge, evf: evf}
}

// Next returns evf applied to the next (from, edge) discovery pair.
func (p *SourcedEdgesProjected[VId, ER, Out]) Next() (Out, bool) {
	se, ok := p.next()
	if !ok {
		var zero Out
		return zero, false
	}
	return p.evf(se), true
}
