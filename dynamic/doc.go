// Package dynamic is the vector-of-inner-range adjacency list: unlike csr,
// it supports incremental growth after construction (AddEdge, repeated
// LoadEdges calls) at the cost of per-row storage overhead.
//
// The inner row container is selectable per Graph via InnerKind, resolved
// once at construction time rather than at the type level (Go's type
// parameters cannot branch on a runtime value the way a C++ template
// argument can, so the three "inner_container" specializations the source
// material distinguishes by type collapse here into one generic Graph whose
// constructor picks a storage strategy):
//
//   - InnerVector: each row is a plain Go slice, appended to in insertion
//     order. Matches std::vector<inner_value>.
//   - InnerList: each row is a container/list.List, appended to in
//     insertion order (PushBack). Matches std::list<inner_value>.
//   - InnerForwardList: each row is also a container/list.List, but new
//     edges are prepended (PushFront), so a row's iteration order is the
//     reverse of insertion order. Matches std::forward_list<inner_value>,
//     whose only O(1) insertion point is the front.
//
// A Graph is unpinned by default: AddEdge and LoadEdges grow its row count
// to fit whatever vertex ids arrive. WithVertexCount pins it instead,
// sizing the rows up front; afterward AddEdge and LoadEdges reject any id
// at or past that bound with model.BadEdge rather than growing.
// LoadVertices is not restricted by the pin and still grows the rows to
// fit the vertex ids it is given.
//
// Complexity: AddEdge is O(1) amortized for InnerVector and InnerList,
// O(1) worst case for InnerForwardList. EdgesAt materializes a row in
// O(deg(id)) regardless of inner kind.
package dynamic
