package model

// This file defines the customization-point interfaces that stand in for
// the C++ source's tag-invoked customization-point objects
// (vertices(g), edges(g,u), edges(g,uid), target_id(g,uv), edge_value(g,uv),
// vertex_value(g,u), vertex_id(g,it), find_vertex(g,id), graph_value(g)).
//
// Each interface names the smallest method set a container must expose for
// one customization point; the free functions below just forward to that
// method, so a user graph type participates in a concept the moment its
// method set matches — no registration, no tags. A type that omits a
// method simply cannot be passed to the function that needs it, which a Go
// compiler reports at the call site: this is the language's structural
// stand-in for spec.md's "fails to compile" contract on concept mismatch.

// VertexRange is satisfied by any container exposing its vertex sequence.
// It is the basis of the basic_adjacency_list concept.
type VertexRange[VR any] interface {
	Vertices() []VR
}

// IncidenceRange is satisfied by any container exposing edges by vertex id.
// It is the basis of the incidence_graph concept.
type IncidenceRange[VId Integer, ER any] interface {
	EdgesAt(id VId) []ER
}

// VertexFinder is satisfied by any container exposing find_vertex(id).
type VertexFinder[VId Integer, VR any] interface {
	FindVertex(id VId) (VR, bool)
}

// VertexIdentifier is satisfied by any container able to report a vertex
// reference's id (vertex_id(g,it)).
type VertexIdentifier[VId Integer, VR any] interface {
	VertexID(VR) VId
}

// VertexValuer is satisfied by any container able to report a vertex
// reference's payload (vertex_value(g,u)).
type VertexValuer[VR any, VV any] interface {
	VertexValueOf(VR) VV
}

// GraphValuer is satisfied by any container carrying a graph-level value.
type GraphValuer[GV any] interface {
	GraphValue() GV
}

// TargetIDer is satisfied by every edge-record shape (target_id(g,uv)).
type TargetIDer[VId Integer] interface {
	Target() VId
}

// EdgeValuer is satisfied by edge-record shapes that carry a value
// (edge_value(g,uv)); EdgeTarget and EdgeSourced do not implement it.
type EdgeValuer[EV any] interface {
	EdgeValue() EV
}

// SourceIDer is satisfied by edge-record shapes that carry an explicit
// source id (source_id(g,uv)); EdgeTarget and EdgeTargetValue do not
// implement it.
type SourceIDer[VId Integer] interface {
	Source() VId
}

// AdjacencyList composes the basic_adjacency_list concept: a vertex range
// plus per-vertex incidence lookup. Both csr.Graph and dynamic.Graph
// satisfy it for every instantiation.
type AdjacencyList[VId Integer, VR any, ER any] interface {
	VertexRange[VR]
	IncidenceRange[VId, ER]
}

// IncidenceGraph composes incidence_graph: an AdjacencyList that additionally
// resolves a vertex reference from a bare id via FindVertex.
type IncidenceGraph[VId Integer, VR any, ER any] interface {
	AdjacencyList[VId, VR, ER]
	VertexFinder[VId, VR]
	VertexIdentifier[VId, VR]
}

// Vertices is the vertices(g) customization point.
func Vertices[VR any, G VertexRange[VR]](g G) []VR { return g.Vertices() }

// EdgesAt is the edges(g, id) customization point (incidence_graph).
func EdgesAt[VId Integer, ER any, G IncidenceRange[VId, ER]](g G, id VId) []ER {
	return g.EdgesAt(id)
}

// FindVertex is the find_vertex(g, id) customization point.
func FindVertex[VId Integer, VR any, G VertexFinder[VId, VR]](g G, id VId) (VR, bool) {
	return g.FindVertex(id)
}

// VertexID is the vertex_id(g, it) customization point.
func VertexID[VId Integer, VR any, G VertexIdentifier[VId, VR]](g G, v VR) VId {
	return g.VertexID(v)
}

// VertexValue is the vertex_value(g, u) customization point.
func VertexValue[VR any, VV any, G VertexValuer[VR, VV]](g G, v VR) VV {
	return g.VertexValueOf(v)
}

// GraphValue is the graph_value(g) customization point.
func GraphValue[GV any, G GraphValuer[GV]](g G) GV { return g.GraphValue() }

// TargetID is the target_id(g, uv) customization point.
func TargetID[VId Integer, E TargetIDer[VId]](e E) VId { return e.Target() }

// EdgeValue is the edge_value(g, uv) customization point.
func EdgeValue[EV any, E EdgeValuer[EV]](e E) EV { return e.EdgeValue() }

// SourceID is the source_id(g, uv) customization point.
func SourceID[VId Integer, E SourceIDer[VId]](e E) VId { return e.Source() }

// RealTargetID implements the undirected-graph BFS/DFS re-crossing guard
// from spec.md section 4.5: on an unordered_edge graph the traversal must
// not walk back across the edge it arrived on. It returns Target(e) unless
// that equals src, in which case it returns Source(e).
func RealTargetID[VId Integer, E interface {
	TargetIDer[VId]
	SourceIDer[VId]
}](e E, src VId) VId {
	t := e.Target()
	if t == src {
		return e.Source()
	}
	return t
}
