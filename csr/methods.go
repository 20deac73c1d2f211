package csr

// VertexCount returns |V|.
func (g *Graph[VId, EV, VV, GV]) VertexCount() int { return int(g.vertexCount) }

// EdgeCount returns |E|.
func (g *Graph[VId, EV, VV, GV]) EdgeCount() int { return len(g.colIndex) }

// Vertices returns the descriptor range [0, |V|), excluding the sentinel
// row. Complexity: O(|V|).
func (g *Graph[VId, EV, VV, GV]) Vertices() []VId {
	out := make([]VId, g.vertexCount)
	for i := range out {
		out[i] = VId(i)
	}
	return out
}

// EdgesAt returns the edge-record range for vertex id. An out-of-range id
// yields an empty slice, as does a vertex that has no row yet (one counted
// through LoadVertices or WithVertexCount beyond the rows LoadEdges built);
// callers that need to tell an out-of-range id apart should check id
// against VertexCount() (or call FindVertex, which reports it as false)
// first.
//
// Complexity: O(1) to locate the row, O(deg(id)) to materialize it.
func (g *Graph[VId, EV, VV, GV]) EdgesAt(id VId) []Edge[VId, EV] {
	i := int64(id)
	if i < 0 || i >= g.vertexCount || i+1 >= int64(len(g.rowIndex)) {
		return nil
	}
	lo, hi := g.rowIndex[i], g.rowIndex[i+1]
	out := make([]Edge[VId, EV], 0, int64(hi)-int64(lo))
	for e := int64(lo); e < int64(hi); e++ {
		out = append(out, Edge[VId, EV]{TargetID: g.colIndex[e], Value: g.edgeValues[e]})
	}
	return out
}

// FindVertex returns the vertex id itself at offset id, bounds-checked.
// For CSR this is always O(1), equivalent to indexing, since the vertex
// reference type is the id.
func (g *Graph[VId, EV, VV, GV]) FindVertex(id VId) (VId, bool) {
	i := int64(id)
	if i < 0 || i >= g.vertexCount {
		return id, false
	}
	return id, true
}

// VertexID returns v's own id: the vertex reference type is the id.
func (g *Graph[VId, EV, VV, GV]) VertexID(v VId) VId { return v }

// VertexValueOf returns the vertex value stored for v. If v is out of
// range, or the graph was instantiated with VV = model.NoValue, the zero
// value of VV is returned.
func (g *Graph[VId, EV, VV, GV]) VertexValueOf(v VId) VV {
	i := int64(v)
	if i < 0 || i >= int64(len(g.vertexValues)) {
		var zero VV
		return zero
	}
	return g.vertexValues[i]
}

// GraphValue returns the graph-level payload set via WithGraphValue.
func (g *Graph[VId, EV, VV, GV]) GraphValue() GV { return g.graphValue }
