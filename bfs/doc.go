// Package bfs is a single breadth-first traversal view over any graph
// satisfying model.IncidenceRange, in the three flavors spec.md section
// 4.5 names:
//
//   - vertices_breadth_first_search(g, seed[, vvf]) — View.Next /
//     View.NextStep (the discovery-tree edge), or NewVerticesProjected for
//     the vvf-projected form.
//   - edges_breadth_first_search(g, seed[, evf]) — View.NextEdge, or
//     NewEdgesProjected for the evf-projected form.
//   - sourced_edges_breadth_first_search(g, seed[, evf]) —
//     View.NextSourcedEdge, or NewSourcedEdgesProjected for the
//     evf-projected form.
//
// All three flavors share one underlying View: build it once with New (a
// directed or already-symmetrized graph) or NewUndirected (an
// unordered_edge graph, where model.RealTargetID guards against
// re-crossing the edge a vertex was arrived on), then call whichever
// Next*/NewX method matches the flavor wanted. Cooperative mid-traversal
// cancellation via Cancel and multi-seed search via WithSeeds apply to all
// three.
//
// A seed vertex is marked visited and has its own out-edges expanded at
// construction time, but is never itself returned by Next — only the
// vertices discovered from it are. This matches the worked traversal in
// spec.md section 8: a breadth-first search seeded at a single vertex
// reports the other nine vertices, not the seed.
package bfs
