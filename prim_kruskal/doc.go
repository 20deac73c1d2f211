// Package prim_kruskal computes minimum (or, with a maximizing comparator,
// maximum) spanning trees: Kruskal over a flat undirected edge list via
// union-find (Kruskal sorts a private copy, KruskalInPlace sorts the
// caller's slice directly), Prim growing outward from a root vertex via a
// heap of candidate edges ordered by the comparator into caller-provided
// predecessor/weight
// output arrays.
//
// Both algorithms accept a Comparator[W] rather than hard-coding ascending
// order, so the same implementation produces either a minimum or a maximum
// spanning tree depending on which of MinWeight or MaxWeight is passed.
//
// Neither algorithm errors on a disconnected graph: Kruskal returns the
// minimum spanning forest (|V| − c edges for c components), and Prim
// leaves every vertex outside root's component at its untouched default
// (pred[v] == v, weight[v] == zero), per spec.md section 8.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) space.
//   - Prim:    O(E log V) time, O(V + E) space.
package prim_kruskal
