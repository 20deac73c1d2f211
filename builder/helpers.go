package builder

import (
	"sort"

	"github.com/katalvlaran/graphcore/model"
)

// sortEdges orders edges by (Source, Target) ascending, the layout
// csr.Graph.LoadEdges requires.
func sortEdges[W model.Weight](edges []model.CopyableEdge[int, W]) {
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Target < b.Target
	})
}

// Symmetrize doubles every edge of a directed Result into both directions
// and re-sorts the result, turning a constructor's directed output into the
// undirected form Prim/Kruskal expect (see routedata.UndirectedEdges for
// the same convention over the fixed Germany route table). Self-loops are
// doubled too; Kruskal/Prim already discard them.
func Symmetrize[W model.Weight](r Result[W]) Result[W] {
	out := make([]model.CopyableEdge[int, W], 0, 2*len(r.Edges))
	for _, e := range r.Edges {
		out = append(out, e, model.CopyableEdge[int, W]{Source: e.Target, Target: e.Source, Value: e.Value})
	}
	sortEdges(out)
	return Result[W]{VertexCount: r.VertexCount, Edges: out}
}
