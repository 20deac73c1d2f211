package views

import "github.com/katalvlaran/graphcore/model"

// Neighbors is the neighbors(g, uid) view: the target id of every edge
// leaving vertex id, in incidence order. It does not apply the undirected
// re-crossing guard — use NeighborsUndirected for that.
func Neighbors[VId model.Integer, ER model.TargetIDer[VId], G model.IncidenceRange[VId, ER]](g G, id VId) *Cursor[VId] {
	es := model.EdgesAt[VId, ER](g, id)
	out := make([]VId, len(es))
	for i, e := range es {
		out[i] = e.Target()
	}
	return NewCursor(out)
}

// sourcedEdge composes the two accessors RealTargetID needs; dynamic.Edge
// and csr.Edge (both model.EdgeTargetValue) do not implement Source(), so
// NeighborsUndirected only applies to graphs whose edge-record shape is one
// of the two "sourced" variants from spec.md section 4.1's table.
type sourcedEdge[VId model.Integer] interface {
	model.TargetIDer[VId]
	model.SourceIDer[VId]
}

// NeighborsUndirected is neighbors(g, uid) over an unordered_edge graph: it
// applies the re-crossing guard from spec.md section 4.5, returning
// Source(e) instead of Target(e) whenever Target(e) == id (the edge was
// arrived at from its own target side).
func NeighborsUndirected[VId model.Integer, ER sourcedEdge[VId], G model.IncidenceRange[VId, ER]](g G, id VId) *Cursor[VId] {
	es := model.EdgesAt[VId, ER](g, id)
	out := make([]VId, len(es))
	for i, e := range es {
		out[i] = model.RealTargetID[VId](e, id)
	}
	return NewCursor(out)
}
