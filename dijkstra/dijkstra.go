package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/graphcore/model"
)

// weightedEdge is the edge-record method set ShortestPaths needs: a target
// id to relax toward and a weight to relax with.
type weightedEdge[VId model.Integer, W model.Weight] interface {
	model.TargetIDer[VId]
	model.EdgeValuer[W]
}

// weightedGraph is the graph method set ShortestPaths needs: a vertex range
// to initialize against and per-vertex incidence to relax.
type weightedGraph[VId model.Integer, ER any] interface {
	model.VertexRange[VId]
	model.IncidenceRange[VId, ER]
}

// ShortestPaths computes the minimum-cost distance from source to every
// vertex reachable from it in g, using a min-heap priority queue and lazy
// decrease-key relaxation: a shorter distance found for an already-queued
// vertex is pushed again rather than updated in place, and stale entries
// are detected and skipped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths[VId model.Integer, W model.Weight, ER weightedEdge[VId, W], G weightedGraph[VId, ER]](g G, source VId, opts ...Option) (Result[VId, W], error) {
	var cfg Options
	for _, o := range opts {
		o(&cfg)
	}

	verts := model.Vertices[VId](g)
	bound := int64(len(verts))
	if s := int64(source); s < 0 || s >= bound {
		return Result[VId, W]{}, model.NewOutOfRange("ShortestPaths", s, bound)
	}

	r := &runner[VId, W, ER, G]{
		g:         g,
		dist:      make(map[VId]W, len(verts)),
		reachable: make(map[VId]bool, len(verts)),
	}
	if cfg.returnPath {
		r.pred = make(map[VId]VId, len(verts))
		r.pred[source] = source
	}

	r.dist[source] = 0
	r.reachable[source] = true
	heap.Init(&r.pq)
	heap.Push(&r.pq, item[VId, W]{vertex: source, dist: 0})

	r.process()

	return Result[VId, W]{Distance: r.dist, Reachable: r.reachable, Predecessor: r.pred}, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner[VId model.Integer, W model.Weight, ER weightedEdge[VId, W], G weightedGraph[VId, ER]] struct {
	g         G
	dist      map[VId]W
	reachable map[VId]bool
	pred      map[VId]VId
	pq        priorityQueue[VId, W]
}

// process repeatedly extracts the least-distance vertex and relaxes its
// outgoing edges, until the queue is empty.
func (r *runner[VId, W, ER, G]) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(item[VId, W])
		u, d := it.vertex, it.dist

		// Stale lazy-decrease-key entry: a better distance for u was
		// already finalized.
		if d > r.dist[u] {
			continue
		}

		for _, e := range model.EdgesAt[VId, ER](r.g, u) {
			t := e.Target()
			w := model.EdgeValue[W](e)
			candidate := r.dist[u] + w

			if !r.reachable[t] || candidate < r.dist[t] {
				r.dist[t] = candidate
				r.reachable[t] = true
				if r.pred != nil {
					r.pred[t] = u
				}
				heap.Push(&r.pq, item[VId, W]{vertex: t, dist: candidate})
			}
		}
	}
}

// item is a (vertex, distance) pair stored in the priority queue.
type item[VId model.Integer, W model.Weight] struct {
	vertex VId
	dist   W
}

// priorityQueue is a min-heap of item, ordered by dist ascending.
type priorityQueue[VId model.Integer, W model.Weight] []item[VId, W]

func (pq priorityQueue[VId, W]) Len() int            { return len(pq) }
func (pq priorityQueue[VId, W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue[VId, W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[VId, W]) Push(x interface{}) { *pq = append(*pq, x.(item[VId, W])) }
func (pq *priorityQueue[VId, W]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
