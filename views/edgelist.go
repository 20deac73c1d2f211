package views

import "github.com/katalvlaran/graphcore/model"

// EdgeListEntry pairs a synthesized source id with the edge record it came
// from, for edge-record shapes (like csr.Edge and dynamic.Edge) that don't
// carry an explicit source: the source is the row the edge was found under.
type EdgeListEntry[VId model.Integer, ER any] struct {
	Source VId
	Edge   ER
}

// edgeListGraph is the method set edgelist needs: a vertex range to walk,
// per-vertex incidence to flatten, and a way to recover each vertex
// reference's own id for the Source field.
type edgeListGraph[VId model.Integer, VR any, ER any] interface {
	model.VertexRange[VR]
	model.IncidenceRange[VId, ER]
	model.VertexIdentifier[VId, VR]
}

// EdgeList is the edgelist(g) view: every edge in g, flattened across every
// vertex's incidence range in Vertices() order, each paired with the source
// id it was found under.
func EdgeList[VId model.Integer, VR any, ER any, G edgeListGraph[VId, VR, ER]](g G) *Cursor[EdgeListEntry[VId, ER]] {
	var out []EdgeListEntry[VId, ER]
	for _, v := range model.Vertices[VR](g) {
		id := model.VertexID[VId, VR](g, v)
		for _, e := range model.EdgesAt[VId, ER](g, id) {
			out = append(out, EdgeListEntry[VId, ER]{Source: id, Edge: e})
		}
	}
	return NewCursor(out)
}

// EdgeListRange restricts EdgeList to source ids in the half-open range
// [firstID, lastID), matching spec.md's optional first_id/last_id
// parameters to edgelist(g, first, last).
func EdgeListRange[VId model.Integer, VR any, ER any, G edgeListGraph[VId, VR, ER]](g G, firstID, lastID VId) *Cursor[EdgeListEntry[VId, ER]] {
	var out []EdgeListEntry[VId, ER]
	for _, v := range model.Vertices[VR](g) {
		id := model.VertexID[VId, VR](g, v)
		if id < firstID || id >= lastID {
			continue
		}
		for _, e := range model.EdgesAt[VId, ER](g, id) {
			out = append(out, EdgeListEntry[VId, ER]{Source: id, Edge: e})
		}
	}
	return NewCursor(out)
}
