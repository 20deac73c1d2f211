// Package dijkstra computes single-source shortest paths over any graph
// satisfying model.IncidenceRange and model.VertexRange, whose edge records
// expose both a target id and a value. A source id outside [0, |V|) fails
// with model.OutOfRange. Negative edge weights are accepted but the result
// is undefined: Dijkstra's relaxation invariant assumes non-negative
// weights, and the algorithm does not pre-scan to enforce that, per
// spec.md section 4.6.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex's edges are relaxed once, when its distance is
//     finalized; stale queue entries for it are popped and skipped.
//   - Each edge relaxation may push a new entry (lazy decrease-key):
//     up to E pushes, each O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst case for heap entries under lazy decrease-key.
package dijkstra
