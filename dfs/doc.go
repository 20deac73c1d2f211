// Package dfs is a single depth-first traversal view over any graph
// satisfying model.IncidenceRange, in the three flavors spec.md section
// 4.5 names:
//
//   - vertices_depth_first_search(g, seed[, vvf]) — View.Next / View.NextStep
//     (pairing each vertex with the depth it was discovered at), or
//     NewVerticesProjected for the vvf-projected form.
//   - edges_depth_first_search(g, seed[, evf]) — View.NextEdge, or
//     NewEdgesProjected for the evf-projected form.
//   - sourced_edges_depth_first_search(g, seed[, evf]) —
//     View.NextSourcedEdge, or NewSourcedEdgesProjected for the
//     evf-projected form.
//
// All three flavors share one underlying View: build it once with New (a
// directed or already-symmetrized graph) or NewUndirected (an
// unordered_edge graph, where model.RealTargetID guards against
// re-crossing the edge a vertex was arrived on), then call whichever
// Next*/NewX method matches the flavor wanted. Cooperative mid-traversal
// cancellation via Cancel and multi-seed search via WithSeeds, sharing
// bfs's CancelKind semantics and seed convention (a seed is visited and
// expanded at construction time, but never itself emitted), apply to all
// three.
//
// Traversal order is preorder: a vertex is emitted the moment it is first
// discovered, before any of its own children. Children are visited in the
// order their edge records list them, exactly matching the recursive
// definition of depth-first search — an iterative stack reproduces it only
// because each vertex's children are pushed in reverse listed order.
package dfs
