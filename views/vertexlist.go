package views

import "github.com/katalvlaran/graphcore/model"

// VertexList is the vertexlist(g) view: every vertex reference g exposes,
// in the order Vertices() returns them.
func VertexList[VR any, G model.VertexRange[VR]](g G) *Cursor[VR] {
	return NewCursor(model.Vertices[VR](g))
}

// VertexListProjected applies proj (typically vertex_id or vertex_value) to
// each vertex reference before handing it back.
func VertexListProjected[VR any, Out any, G model.VertexRange[VR]](g G, proj func(VR) Out) *Cursor[Out] {
	vs := model.Vertices[VR](g)
	out := make([]Out, len(vs))
	for i, v := range vs {
		out[i] = proj(v)
	}
	return NewCursor(out)
}
