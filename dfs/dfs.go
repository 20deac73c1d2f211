package dfs

import "github.com/katalvlaran/graphcore/model"

// sourcedEdge composes the two accessors RealTargetID needs; an edge-record
// shape missing Source() (e.g. csr.Edge/dynamic.Edge, both
// model.EdgeTargetValue) cannot be used with NewUndirected, only with New.
type sourcedEdge[VId model.Integer] interface {
	model.TargetIDer[VId]
	model.SourceIDer[VId]
}

// discovery is one stacked frontier entry: the edge that discovered vertex
// to, at depth dep, from vertex from.
type discovery[VId model.Integer, ER model.TargetIDer[VId]] struct {
	from VId
	to   VId
	dep  int
	edge ER
}

// View drives one depth-first traversal over a graph g whose edge records
// expose a target id. Zero value is not usable; build one with New or
// NewUndirected.
type View[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER]] struct {
	g        G
	visited  map[VId]bool
	stack    []discovery[VId, ER]
	targetOf func(e ER, from VId) VId

	cancel     CancelKind
	pending    discovery[VId, ER]
	hasPending bool
}

// newView seeds and primes a View using targetOf to resolve each edge's
// real target (e.Target() for a directed graph, model.RealTargetID for an
// undirected one). Every seed is marked visited and has its out-edges
// pushed immediately (in reverse listed order, so the first child in the
// edge list is the first one popped), so the first Next call returns the
// first vertex discovered from a seed, not a seed itself.
func newView[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER]](g G, targetOf func(ER, VId) VId, opts ...Option[VId]) *View[VId, ER, G] {
	var cfg config[VId]
	for _, o := range opts {
		o(&cfg)
	}
	seeds := cfg.seeds
	if len(seeds) == 0 {
		var zero VId
		seeds = []VId{zero}
	}

	v := &View[VId, ER, G]{g: g, visited: make(map[VId]bool), targetOf: targetOf}
	for _, s := range seeds {
		if v.visited[s] {
			continue
		}
		v.visited[s] = true
		v.push(s, 0)
	}
	return v
}

// New seeds and primes a View for a directed (or already-symmetrized)
// graph: vertices_depth_first_search(g, seed) over a directed_edge or
// ordered_edge container.
func New[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER]](g G, opts ...Option[VId]) *View[VId, ER, G] {
	return newView[VId, ER, G](g, func(e ER, _ VId) VId { return e.Target() }, opts...)
}

// NewUndirected seeds and primes a View over an unordered_edge graph,
// applying model.RealTargetID so the traversal never re-crosses the edge
// it arrived on, per spec.md section 4.5.
func NewUndirected[VId model.Integer, ER sourcedEdge[VId], G model.IncidenceRange[VId, ER]](g G, opts ...Option[VId]) *View[VId, ER, G] {
	return newView[VId, ER, G](g, model.RealTargetID[VId, ER], opts...)
}

// push expands u, at depth-from-u dep, onto the stack in reverse listed
// order so the first unvisited child in EdgesAt(u) is the next one popped.
// A child is marked visited when it is popped, not here, so a vertex
// stacked more than once is emitted only at its first (deepest-path) pop.
func (v *View[VId, ER, G]) push(u VId, dep int) {
	edges := model.EdgesAt[VId, ER](v.g, u)
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		t := v.targetOf(e, u)
		if !v.visited[t] {
			v.stack = append(v.stack, discovery[VId, ER]{from: u, to: t, dep: dep + 1, edge: e})
		}
	}
}

// Cancel requests cooperative cancellation, applied just before the next
// Next/NextStep/NextEdge/NextSourcedEdge call would otherwise push the
// children of the vertex most recently returned. See CancelKind for the
// two cancellation flavors.
func (v *View[VId, ER, G]) Cancel(kind CancelKind) { v.cancel = kind }

// next pops the next stacked entry, deferring expansion of the
// previously-returned entry until this call (so Cancel takes effect before
// that expansion happens).
func (v *View[VId, ER, G]) next() (discovery[VId, ER], bool) {
	if v.hasPending {
		switch v.cancel {
		case CancelBranch:
			v.cancel = ContinueSearch
		case CancelAll:
			// leave v.pending unexpanded; the check below halts us anyway.
		default:
			v.push(v.pending.to, v.pending.dep)
		}
		v.hasPending = false
	}

	if v.cancel == CancelAll {
		return discovery[VId, ER]{}, false
	}

	for len(v.stack) > 0 {
		top := len(v.stack) - 1
		d := v.stack[top]
		v.stack = v.stack[:top]
		if v.visited[d.to] {
			continue
		}
		v.visited[d.to] = true

		v.pending, v.hasPending = d, true
		return d, true
	}
	return discovery[VId, ER]{}, false
}

// NextStep returns the next (vertex, depth) pair in depth-first preorder,
// or a zero Step and false once the stack is exhausted (or CancelAll took
// effect).
func (v *View[VId, ER, G]) NextStep() (Step[VId], bool) {
	d, ok := v.next()
	if !ok {
		var zero Step[VId]
		return zero, false
	}
	return Step[VId]{Vertex: d.to, Depth: d.dep}, true
}

// Next returns the next vertex id in depth-first preorder —
// vertices_depth_first_search(g, seed) without a projection function.
func (v *View[VId, ER, G]) Next() (VId, bool) {
	d, ok := v.next()
	return d.to, ok
}

// NextEdge returns the edge record that discovered the next vertex —
// edges_depth_first_search(g, seed) without a projection function.
func (v *View[VId, ER, G]) NextEdge() (ER, bool) {
	d, ok := v.next()
	return d.edge, ok
}

// NextSourcedEdge returns the discovering vertex alongside the edge record
// that discovered the next vertex — sourced_edges_depth_first_search(g,
// seed) without a projection function.
func (v *View[VId, ER, G]) NextSourcedEdge() (SourcedEdge[VId, ER], bool) {
	d, ok := v.next()
	if !ok {
		var zero SourcedEdge[VId, ER]
		return zero, false
	}
	return SourcedEdge[VId, ER]{From: d.from, Edge: d.edge}, true
}
