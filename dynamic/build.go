package dynamic

import (
	"container/list"

	"github.com/katalvlaran/graphcore/model"
)

// LoadEdges appends edges to g in whatever order they arrive, growing rows
// on demand; unlike csr.Graph.LoadEdges it may be called any number of
// times and places no ordering requirement on its argument, since a
// dynamic.Graph's rows are genuinely mutable rather than a one-shot CSR
// layout.
//
// Complexity: O(len(edges)) amortized for InnerVector and InnerList rows,
// same for InnerForwardList.
func (g *Graph[VId, EV, VV, GV]) LoadEdges(edges []model.CopyableEdge[VId, EV]) error {
	for _, e := range edges {
		if err := g.AddEdge(e.Source, e.Target, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge appends a single (source, target, value) edge. A negative id is
// always rejected with model.BadEdge, matching spec.md's requirement that
// every edge land on a vertex that exists.
//
// An unpinned Graph (the default) grows its row count to fit both
// endpoints. A Graph built with WithVertexCount is pinned: its row count
// is fixed, and an id at or past that bound is rejected with
// model.BadEdge instead of growing the graph.
func (g *Graph[VId, EV, VV, GV]) AddEdge(source, target VId, value EV) error {
	if int64(source) < 0 {
		return model.NewBadEdge("negative source id", int64(source))
	}
	if int64(target) < 0 {
		return model.NewBadEdge("negative target id", int64(target))
	}

	need := int64(source) + 1
	if int64(target)+1 > need {
		need = int64(target) + 1
	}
	if g.pinned {
		if bound := g.vertexCount(); need > bound {
			if int64(source) >= bound {
				return model.NewBadEdge("source id out of pinned vertex count", int64(source))
			}
			return model.NewBadEdge("target id out of pinned vertex count", int64(target))
		}
	} else {
		g.growRows(need)
	}

	e := Edge[VId, EV]{TargetID: target, Value: value}
	switch g.kind {
	case InnerList:
		g.listRows[source].PushBack(e)
	case InnerForwardList:
		g.listRows[source].PushFront(e)
	default:
		g.vecRows[source] = append(g.vecRows[source], e)
	}
	return nil
}

// LoadVertices assigns vertex values by id, growing rows to fit the largest
// id seen. As with csr.Graph.LoadVertices, later entries for the same id
// overwrite earlier ones.
func (g *Graph[VId, EV, VV, GV]) LoadVertices(vertices []model.CopyableVertex[VId, VV]) error {
	var maxSeen int64 = -1
	for _, v := range vertices {
		if int64(v.ID) > maxSeen {
			maxSeen = int64(v.ID)
		}
	}
	if maxSeen >= 0 {
		g.growRows(maxSeen + 1)
	}
	for _, v := range vertices {
		g.vertexValues[v.ID] = v.Value
	}
	return nil
}

// vertexCount reports g's current row count, the bound a pinned Graph
// enforces against.
func (g *Graph[VId, EV, VV, GV]) vertexCount() int64 {
	if g.kind == InnerList || g.kind == InnerForwardList {
		return int64(len(g.listRows))
	}
	return int64(len(g.vecRows))
}

func (g *Graph[VId, EV, VV, GV]) growRows(n int64) {
	switch g.kind {
	case InnerList, InnerForwardList:
		for int64(len(g.listRows)) < n {
			g.listRows = append(g.listRows, list.New())
		}
	default:
		for int64(len(g.vecRows)) < n {
			g.vecRows = append(g.vecRows, nil)
		}
	}
	if n > int64(len(g.vertexValues)) {
		grown := make([]VV, n)
		copy(grown, g.vertexValues)
		g.vertexValues = grown
	}
}
