// Package graphcore is an in-memory graph-algorithms core for Go: the
// model/customization-point layer, two adjacency containers (a read-only
// CSR bulk loader and an incrementally-buildable dynamic adjacency list),
// five traversal views (vertexlist, incidence, neighbors, edgelist, and
// cancellable BFS/DFS), shortest paths (Dijkstra) and spanning trees
// (Kruskal, Prim), and a deterministic topology builder for assembling test
// and example graphs.
//
// Under the hood, everything is organized under one package per concern:
//
//	model/        — Integer/Weight constraints, descriptor and edge-record
//	               abstractions, NoValue, and the shared error types
//	csr/          — single-load compressed-sparse-row container
//	dynamic/      — incremental vector/list/forward-list adjacency container
//	views/        — pull-model Cursor views over either container
//	bfs/, dfs/    — cancellable breadth-first and depth-first traversal
//	dijkstra/     — single-source shortest paths over non-negative weights
//	prim_kruskal/ — minimum/maximum spanning trees
//	builder/      — deterministic path/cycle/star/wheel/grid/random topologies
//	routedata/    — the fixed ten-city route table used across package tests
//
// Every container and view is generic over a vertex-id type (model.Integer)
// and, where weights apply, an edge-weight type (model.Weight); instantiate
// EV, VV, or GV type parameters with model.NoValue when a value slot is
// unused, so the container carries no storage for it.
package graphcore
