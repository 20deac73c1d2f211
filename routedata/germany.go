package routedata

import "github.com/katalvlaran/graphcore/model"

// Vertex ids 0..9, in the order spec.md section 8 names them.
const (
	Frankfurt  = 0
	Mannheim   = 1
	Karlsruhe  = 2
	Augsburg   = 3
	Wurzburg   = 4
	Erfurt     = 5
	Kassel     = 6
	Nurnberg   = 7
	Stuttgart  = 8
	Munchen    = 9
	VertexCount = 10
)

// Names indexes a human-readable label by vertex id, for diagnostics only.
var Names = [VertexCount]string{
	Frankfurt: "Frankfurt", Mannheim: "Mannheim", Karlsruhe: "Karlsruhe",
	Augsburg: "Augsburg", Wurzburg: "Wurzburg", Erfurt: "Erfurt",
	Kassel: "Kassel", Nurnberg: "Nurnberg", Stuttgart: "Stuttgart", Munchen: "Munchen",
}

// DirectedEdges is the 11-edge route table from spec.md section 8, in
// (source, target) order already — i.e. non-decreasing by source, and
// ascending by target within a row — so it loads into csr.Graph.LoadEdges
// without any pre-sorting step.
var DirectedEdges = []model.CopyableEdge[int, int]{
	{Source: 0, Target: 1, Value: 85},
	{Source: 0, Target: 4, Value: 217},
	{Source: 0, Target: 6, Value: 173},
	{Source: 1, Target: 2, Value: 80},
	{Source: 2, Target: 3, Value: 250},
	{Source: 3, Target: 8, Value: 84},
	{Source: 4, Target: 5, Value: 103},
	{Source: 4, Target: 7, Value: 186},
	{Source: 5, Target: 8, Value: 167},
	{Source: 5, Target: 9, Value: 183},
	{Source: 6, Target: 8, Value: 502},
}

// TotalEdgeValue is the sum of DirectedEdges' weights (spec.md section 8,
// scenario 1): 2030.
const TotalEdgeValue = 85 + 217 + 173 + 80 + 250 + 84 + 103 + 186 + 167 + 183 + 502

// UndirectedEdges doubles DirectedEdges into both directions, for
// algorithms (Kruskal, Prim) that spec.md section 8 runs "undirected" —
// Kruskal consumes it directly as a flat triple list (direction is
// immaterial to MST weight); Prim needs it loaded into a graph that can be
// walked from either endpoint, so callers load this slice rather than
// DirectedEdges.
func UndirectedEdges() []model.CopyableEdge[int, int] {
	out := make([]model.CopyableEdge[int, int], 0, 2*len(DirectedEdges))
	for _, e := range DirectedEdges {
		out = append(out, e, model.CopyableEdge[int, int]{Source: e.Target, Target: e.Source, Value: e.Value})
	}
	return out
}

// MSTWeight is the total weight of the minimum spanning tree over
// UndirectedEdges (spec.md section 8, scenarios 5 and 6): the Kruskal trace
// accepts, in ascending order, (1,2,80) (3,8,84) (0,1,85) (4,5,103)
// (5,8,167) (0,6,173) (5,9,183) (4,7,186) (0,4,217) — nine edges spanning
// all ten vertices, before (2,3,250) or (6,8,502) are ever needed.
const MSTWeight = 80 + 84 + 85 + 103 + 167 + 173 + 183 + 186 + 217 // = 1278

// MaxSpanningTreeWeight is the total weight of the maximum spanning tree
// over UndirectedEdges (spec.md section 8, scenario 6): the Kruskal trace
// accepts, in descending order, (6,8,502) (2,3,250) (0,4,217) (4,7,186)
// (5,9,183) (0,6,173) (5,8,167) (0,1,85) (3,8,84) — (4,5,103) is skipped as
// a cycle once its endpoints are already joined, and (1,2,80) is never
// needed once the ninth edge completes the tree.
const MaxSpanningTreeWeight = 502 + 250 + 217 + 186 + 183 + 173 + 167 + 85 + 84 // = 1847

// BFSOrderFromFrankfurt is the expected vertex discovery order for a
// breadth-first search of DirectedEdges seeded at Frankfurt (spec.md
// section 8, scenario 2).
var BFSOrderFromFrankfurt = []int{1, 4, 6, 2, 5, 7, 8, 3, 9}

// DFSOrderFromFrankfurt is the expected vertex discovery order for a
// depth-first search of DirectedEdges seeded at Frankfurt (spec.md section
// 8, scenario 3).
var DFSOrderFromFrankfurt = []int{1, 2, 3, 8, 4, 5, 9, 7, 6}
