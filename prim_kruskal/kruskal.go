package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphcore/model"
)

// Kruskal computes a minimum (or maximum) spanning forest over the
// undirected edge list edges, spanning vertexCount vertices, using
// union-find with path compression and union by rank. edges is left
// untouched: Kruskal sorts by cmp over a private copy. Use KruskalInPlace
// to sort edges itself instead.
//
// edges may list each undirected edge once or, as routedata.UndirectedEdges
// does, in both directions — a duplicate whose endpoints are already
// joined is simply skipped, so either convention produces the same forest.
//
// On a disconnected graph, Kruskal does not error: it returns the minimum
// spanning forest, |V| − c edges for c connected components, per spec.md
// section 8's forest property. A self-loop (Source == Target) never joins
// two distinct components, so it is dropped by the same union-find check
// that drops any edge whose endpoints are already joined.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) space.
func Kruskal[VId model.Integer, W model.Weight](vertexCount int, edges []model.CopyableEdge[VId, W], cmp Comparator[W]) ([]MSTEdge[VId, W], W, error) {
	cp := append([]model.CopyableEdge[VId, W](nil), edges...)
	return kruskalForest(vertexCount, cp, cmp)
}

// KruskalInPlace is Kruskal's non-copying variant: it sorts edges itself
// (by cmp over Value) rather than a private copy, per spec.md section
// 4.6's "two variants: one sorts a copy, one sorts the input in place."
func KruskalInPlace[VId model.Integer, W model.Weight](vertexCount int, edges []model.CopyableEdge[VId, W], cmp Comparator[W]) ([]MSTEdge[VId, W], W, error) {
	return kruskalForest(vertexCount, edges, cmp)
}

// kruskalForest runs Kruskal's algorithm, sorting edges in place (the
// caller decides whether edges is shared state or a private copy), and
// returns the resulting forest.
func kruskalForest[VId model.Integer, W model.Weight](vertexCount int, edges []model.CopyableEdge[VId, W], cmp Comparator[W]) ([]MSTEdge[VId, W], W, error) {
	var zero W
	if vertexCount <= 0 {
		return []MSTEdge[VId, W]{}, zero, nil
	}

	sort.SliceStable(edges, func(i, j int) bool { return cmp(edges[i].Value, edges[j].Value) })

	parent := make([]int, vertexCount)
	rank := make([]int, vertexCount)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	forest := make([]MSTEdge[VId, W], 0, vertexCount-1)
	var total W
	for _, e := range edges {
		u, v := int(e.Source), int(e.Target)
		if find(u) == find(v) {
			continue
		}
		union(u, v)
		forest = append(forest, MSTEdge[VId, W]{Source: e.Source, Target: e.Target, Weight: e.Value})
		total += e.Value
		if len(forest) == vertexCount-1 {
			break
		}
	}

	return forest, total, nil
}
