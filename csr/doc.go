// Package csr implements the Compressed-Sparse-Row adjacency-list
// container: three parallel arrays (row offsets, target ids, edge values)
// plus an optional vertex-value array and an optional graph value.
//
// CSR favors static, bulk-loaded graphs: LoadEdges accepts the whole edge
// stream once, in non-decreasing (source, target) order, and builds the
// row-offset array in a single linear pass. There is no per-edge insert and
// no erase — growing or mutating a CSR graph after the initial load means
// building a new one, which is the trade graph-v2 (and this port) make in
// exchange for O(1) row lookup and a cache-friendly, allocation-minimal
// layout.
//
// Complexity:
//   - LoadEdges: O(E) time, O(E) space for the three arrays.
//   - Vertices(): O(1) to build the id range, O(|V|) to materialize it.
//   - EdgesAt(id): O(1) to locate the row, O(deg(id)) to materialize it.
//   - FindVertex(id): O(1).
package csr
