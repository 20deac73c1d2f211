package views

import "github.com/katalvlaran/graphcore/model"

// Incidence is the incidence(g, uid) view: every edge record leaving
// vertex id, in the order EdgesAt() returns them.
func Incidence[VId model.Integer, ER any, G model.IncidenceRange[VId, ER]](g G, id VId) *Cursor[ER] {
	return NewCursor(model.EdgesAt[VId, ER](g, id))
}

// IncidenceProjected applies proj (typically target_id or edge_value) to
// each edge record before handing it back.
func IncidenceProjected[VId model.Integer, ER any, Out any, G model.IncidenceRange[VId, ER]](g G, id VId, proj func(ER) Out) *Cursor[Out] {
	es := model.EdgesAt[VId, ER](g, id)
	out := make([]Out, len(es))
	for i, e := range es {
		out[i] = proj(e)
	}
	return NewCursor(out)
}
