package csr

import "github.com/katalvlaran/graphcore/model"

// LoadEdges bulk-loads g's adjacency from edges, which must already be
// sorted by (Source, Target) ascending with no duplicate (Source, Target)
// pairs. This single pass builds rowIndex, colIndex, and edgeValues and
// writes the terminating sentinel rowIndex[|V|] == |E|.
//
// vertexCount is the caller's best-known lower bound on |V| (0 if unknown,
// or if vertex values were already loaded via LoadVertices / WithVertexCount
// the existing count is respected automatically); if the largest observed
// id exceeds it, the graph grows to fit.
//
// LoadEdges may be called at most once per Graph: a second call returns
// *model.LoadError{Reason: "graph not empty"}.
//
// Complexity: O(E) time, O(E) space.
func (g *Graph[VId, EV, VV, GV]) LoadEdges(vertexCount int, edges []model.CopyableEdge[VId, EV]) error {
	if g.edgesLoaded {
		return model.NewLoadError("graph not empty")
	}

	var maxSeen int64 = -1
	var prevSource int64 = -1
	havePrevTarget := false
	var prevTarget int64

	for _, e := range edges {
		src, tgt := int64(e.Source), int64(e.Target)
		switch {
		case src < prevSource:
			return model.NewLoadError("rows not ordered")
		case src == prevSource:
			if havePrevTarget {
				if tgt < prevTarget {
					return model.NewLoadError("columns not ordered on a row")
				}
				if tgt == prevTarget {
					return model.NewLoadError("duplicate column on a row")
				}
			}
		default:
			havePrevTarget = false
		}
		prevSource, prevTarget, havePrevTarget = src, tgt, true
		if src > maxSeen {
			maxSeen = src
		}
		if tgt > maxSeen {
			maxSeen = tgt
		}
	}

	n := int64(vertexCount)
	if int64(g.vertexCount) > n {
		n = int64(g.vertexCount)
	}
	if maxSeen+1 > n {
		n = maxSeen + 1
	}

	rowIndex := make([]VId, n+1)
	colIndex := make([]VId, len(edges))
	edgeValues := make([]EV, len(edges))

	ei := 0
	for v := int64(0); v < n; v++ {
		rowIndex[v] = VId(ei)
		for ei < len(edges) && int64(edges[ei].Source) == v {
			colIndex[ei] = edges[ei].Target
			edgeValues[ei] = edges[ei].Value
			ei++
		}
	}
	rowIndex[n] = VId(ei)

	g.rowIndex = rowIndex
	g.colIndex = colIndex
	g.edgeValues = edgeValues
	g.edgesLoaded = true
	if n > g.vertexCount {
		g.growVertexValues(n)
	}

	return nil
}

// LoadVertices assigns vertex values by id. It may be called before or
// after LoadEdges, and as many times as needed; later entries for the same
// id overwrite earlier ones, and the vertex-value array grows to fit the
// largest id seen, matching spec.md's "vertex streams need not be ordered;
// later entries overwrite" rule.
//
// Complexity: O(len(vertices)).
func (g *Graph[VId, EV, VV, GV]) LoadVertices(vertices []model.CopyableVertex[VId, VV]) error {
	var maxSeen int64 = -1
	for _, v := range vertices {
		if int64(v.ID) > maxSeen {
			maxSeen = int64(v.ID)
		}
	}
	if maxSeen+1 > g.vertexCount {
		g.growVertexValues(maxSeen + 1)
	}
	for _, v := range vertices {
		g.vertexValues[v.ID] = v.Value
	}
	return nil
}

func (g *Graph[VId, EV, VV, GV]) growVertexValues(n int64) {
	if n <= g.vertexCount {
		return
	}
	grown := make([]VV, n)
	copy(grown, g.vertexValues)
	g.vertexValues = grown
	g.vertexCount = n
}
