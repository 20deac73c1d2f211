package model

// CopyableEdge is the lingua franca for bulk-loading edges and for the
// edgelist view: a plain value, never a reference into a graph.
//
//	Source - the id of the edge's tail vertex.
//	Target - the id of the edge's head vertex.
//	Value  - the edge's payload; instantiate with NoValue when absent.
type CopyableEdge[VId Integer, EV any] struct {
	Source VId
	Target VId
	Value  EV
}

// CopyableVertex is the lingua franca for bulk-loading vertex values.
//
//	ID    - the vertex id this value belongs to.
//	Value - the vertex's payload; instantiate with NoValue when absent.
type CopyableVertex[VId Integer, VV any] struct {
	ID    VId
	Value VV
}

// The four inner-edge-record shapes recognized by spec.md section 4.1's
// table, realized as a tagged variant (one concrete type per combination
// of "has value" and "has explicit source"), rather than as a single
// struct with always-present fields. Each type implements exactly the
// accessors the table says are available for that shape; calling an
// accessor the shape does not support is therefore a compile error, which
// is the Go equivalent of the spec's "fails to compile" contract.

// EdgeTarget carries only a target id: the "integral T" row of the table.
type EdgeTarget[VId Integer] struct {
	TargetID VId
}

// EdgeTargetValue carries a target id and a value: the "pair/tuple" row.
type EdgeTargetValue[VId Integer, EV any] struct {
	TargetID VId
	Value    EV
}

// EdgeSourced carries a target id and an explicit source id: the
// "struct{source_id, target_id}" row.
type EdgeSourced[VId Integer] struct {
	SourceID VId
	TargetID VId
}

// EdgeSourcedValue carries a target id, an explicit source id, and a
// value: the "struct{source_id, target_id, value}" row.
type EdgeSourcedValue[VId Integer, EV any] struct {
	SourceID VId
	TargetID VId
	Value    EV
}

// Target returns e's target id. Every edge-record shape implements it.
func (e EdgeTarget[VId]) Target() VId      { return e.TargetID }
func (e EdgeTargetValue[VId, EV]) Target() VId { return e.TargetID }
func (e EdgeSourced[VId]) Target() VId         { return e.TargetID }
func (e EdgeSourcedValue[VId, EV]) Target() VId { return e.TargetID }

// EdgeValue returns e's payload. Only the value-carrying shapes implement it.
func (e EdgeTargetValue[VId, EV]) EdgeValue() EV     { return e.Value }
func (e EdgeSourcedValue[VId, EV]) EdgeValue() EV { return e.Value }

// Source returns e's explicit source id. Only the sourced shapes implement it.
func (e EdgeSourced[VId]) Source() VId         { return e.SourceID }
func (e EdgeSourcedValue[VId, EV]) Source() VId { return e.SourceID }
