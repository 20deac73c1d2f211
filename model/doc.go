// Package model defines the customization points, concepts, and the
// descriptor abstraction that let graphcore's algorithms and views run
// unchanged against any adjacency-shaped container.
//
// Nothing in this package stores a graph. It only describes, via small
// generic interfaces, the operations a container must expose
// (Vertices, EdgesAt, TargetID, EdgeValue, VertexValue, VertexID,
// FindVertex, GraphValue) and provides the four edge-record shapes
// (target-only, target+value, source+target, source+target+value) that
// the built-in containers — and any user container — assemble rows from.
//
// Errors:
//
//	OutOfRange - a vertex id or output buffer index fell outside [0, |V|).
//	LoadError  - a CSR load-time ordering/duplicate invariant was violated.
//	BadEdge    - a dynamic-container load referenced an out-of-range id.
package model
