package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/graphcore/model"
)

// Prim grows a minimum (or maximum) spanning tree over g from root,
// populating pred and weight: pred[v] is the tree-parent of v, weight[v]
// the weight of the edge (pred[v], v); pred[root] == root and weight[root]
// is the zero value, per spec.md section 8's optimality property. pred and
// weight must each have length at least vertexCount, and root must be in
// [0, vertexCount) — either violation fails with model.OutOfRange, the
// latter naming root as the offending id.
//
// g's edge records must expose a target id and a weight; g is expected to
// expose both directions of every undirected edge (as
// routedata.UndirectedEdges and its loaders do), since Prim only ever
// walks forward along EdgesAt. A heap of candidate edges (source, target,
// weight), ordered by cmp, drives selection; a finished set prevents
// reprocessing, and stale heap entries (an edge whose target is already in
// the tree) are popped and skipped.
//
// Prim does not error on a disconnected graph: it only grows the seed's
// own component, leaving every vertex outside it at its initial pred[v] ==
// v, weight[v] == zero — never visited, so never relaxed.
//
// Complexity: O(E log V) time, O(V + E) space.
func Prim[VId model.Integer, W model.Weight, ER weightedEdge[VId, W], G weightedGraph[VId, ER]](g G, root VId, vertexCount int, pred []VId, weight []W, cmp Comparator[W]) (W, error) {
	var zero W
	bound := int64(vertexCount)
	if r := int64(root); r < 0 || r >= bound {
		return zero, model.NewOutOfRange("Prim", r, bound)
	}
	if n := int64(len(pred)); n < bound {
		return zero, model.NewOutOfRange("Prim.pred", n, bound)
	}
	if n := int64(len(weight)); n < bound {
		return zero, model.NewOutOfRange("Prim.weight", n, bound)
	}

	for i := 0; i < vertexCount; i++ {
		pred[i] = VId(i)
		weight[i] = zero
	}

	finished := make([]bool, vertexCount)
	finished[int(root)] = true

	pq := &edgeQueue[VId, W]{cmp: cmp}
	heap.Init(pq)
	grow := func(from VId) {
		for _, e := range model.EdgesAt[VId, ER](g, from) {
			t := e.Target()
			if !finished[int(t)] {
				heap.Push(pq, mstCandidate[VId, W]{source: from, target: t, weight: model.EdgeValue[W](e)})
			}
		}
	}
	grow(root)

	var total W
	for pq.Len() > 0 {
		cand := heap.Pop(pq).(mstCandidate[VId, W])
		if finished[int(cand.target)] {
			continue
		}
		finished[int(cand.target)] = true
		pred[int(cand.target)] = cand.source
		weight[int(cand.target)] = cand.weight
		total += cand.weight
		grow(cand.target)
	}

	return total, nil
}

// mstCandidate is a not-yet-accepted tree edge sitting in Prim's frontier
// queue.
type mstCandidate[VId model.Integer, W model.Weight] struct {
	source VId
	target VId
	weight W
}

// edgeQueue is a heap of mstCandidate, ordered by cmp over weight.
type edgeQueue[VId model.Integer, W model.Weight] struct {
	items []mstCandidate[VId, W]
	cmp   Comparator[W]
}

func (pq *edgeQueue[VId, W]) Len() int           { return len(pq.items) }
func (pq *edgeQueue[VId, W]) Less(i, j int) bool { return pq.cmp(pq.items[i].weight, pq.items[j].weight) }
func (pq *edgeQueue[VId, W]) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *edgeQueue[VId, W]) Push(x interface{}) {
	pq.items = append(pq.items, x.(mstCandidate[VId, W]))
}
func (pq *edgeQueue[VId, W]) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]
	return it
}
