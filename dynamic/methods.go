package dynamic

// VertexCount returns |V|: the number of rows, regardless of inner kind.
func (g *Graph[VId, EV, VV, GV]) VertexCount() int {
	if g.kind == InnerList || g.kind == InnerForwardList {
		return len(g.listRows)
	}
	return len(g.vecRows)
}

// EdgeCount returns |E| summed across every row.
func (g *Graph[VId, EV, VV, GV]) EdgeCount() int {
	total := 0
	if g.kind == InnerList || g.kind == InnerForwardList {
		for _, row := range g.listRows {
			total += row.Len()
		}
		return total
	}
	for _, row := range g.vecRows {
		total += len(row)
	}
	return total
}

// Vertices returns the descriptor range [0, |V|).
func (g *Graph[VId, EV, VV, GV]) Vertices() []VId {
	out := make([]VId, g.VertexCount())
	for i := range out {
		out[i] = VId(i)
	}
	return out
}

// EdgesAt returns id's row, in the order InnerKind stores it: insertion
// order for InnerVector and InnerList, reverse-insertion order for
// InnerForwardList. An out-of-range id yields nil.
func (g *Graph[VId, EV, VV, GV]) EdgesAt(id VId) []Edge[VId, EV] {
	i := int64(id)
	if i < 0 || i >= int64(g.VertexCount()) {
		return nil
	}
	if g.kind == InnerList || g.kind == InnerForwardList {
		row := g.listRows[i]
		out := make([]Edge[VId, EV], 0, row.Len())
		for e := row.Front(); e != nil; e = e.Next() {
			out = append(out, e.Value.(Edge[VId, EV]))
		}
		return out
	}
	row := g.vecRows[i]
	out := make([]Edge[VId, EV], len(row))
	copy(out, row)
	return out
}

// FindVertex reports whether id is in range; the vertex reference type is
// the id itself, as in csr.Graph.
func (g *Graph[VId, EV, VV, GV]) FindVertex(id VId) (VId, bool) {
	i := int64(id)
	if i < 0 || i >= int64(g.VertexCount()) {
		return id, false
	}
	return id, true
}

// VertexID returns v's own id.
func (g *Graph[VId, EV, VV, GV]) VertexID(v VId) VId { return v }

// VertexValueOf returns the vertex value stored for v, or VV's zero value
// if v is out of range.
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
