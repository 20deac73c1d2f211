// Package routedata is the worked "Germany routes" fixture from spec.md
// section 8: the 10-vertex, 11-edge weighted graph used end-to-end by the
// CSR, bfs, dfs, dijkstra, and prim_kruskal test suites.
//
// Grounded on original_source/example/CppCon2021/examples/ospf.cpp and
// graphs.cpp, the worked examples the graph-v2 corpus builds its own BFS,
// DFS, Dijkstra, and MST tests against. Those example programs are
// themselves out of scope for this module (spec.md section 1 names "Bacon
// number, Spice netlist, IMDB bipartite join" example programs as external
// collaborators not implemented here), but the small, named fixture data
// they exercise is exactly what spec.md section 8 phrases its testable
// properties against, so it gets a reusable home instead of being retyped
// in every _test.go that needs it.
package routedata
