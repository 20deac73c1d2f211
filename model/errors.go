package model

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is the constraint satisfied by every vertex-id type graphcore
// accepts. It is re-exported from golang.org/x/exp/constraints so that
// callers need not import that package directly just to write VId Integer.
//
// Grounded on sixafter-graph's use of golang.org/x/exp/constraints for its
// own Ordered hash-key constraint; the teacher (katalvlaran/lvlath) has no
// numeric-constraint dependency of its own because it keys graphs by string.
type Integer = constraints.Integer

// Weight is the constraint satisfied by every edge-weight type the
// shortest-paths and minimum/maximum-spanning-tree algorithms accept: any
// built-in numeric type that supports ordering and addition.
type Weight = interface {
	constraints.Integer | constraints.Float
}

// NoValue is the zero-size type used to instantiate EV, VV, or GV type
// parameters when the corresponding value is absent. Containers do not
// special-case it: their value slices keep their usual length, but a slice
// of a zero-size type stores no per-element data, so an absent value
// occupies no extra storage.
type NoValue = struct{}

// OutOfRange reports that a vertex id, or an output buffer shorter than
// |V|, fell outside the valid range [0, |V|).
type OutOfRange struct {
	// Op names the operation that detected the violation, e.g. "FindVertex".
	Op string
	// ID is the offending id or index.
	ID int64
	// Bound is the exclusive upper bound the id was checked against.
	Bound int64
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("model: %s: id %d out of range [0, %d)", e.Op, e.ID, e.Bound)
}

// NewOutOfRange constructs an *OutOfRange for the given operation, id, and bound.
func NewOutOfRange(op string, id, bound int64) *OutOfRange {
	return &OutOfRange{Op: op, ID: id, Bound: bound}
}

// LoadError reports a CSR load-time invariant violation: rows delivered out
// of order, a row's columns out of order, a duplicate column on a sorted
// row, or a second load attempted on a non-empty graph.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string { return fmt.Sprintf("model: load error: %s", e.Reason) }

// NewLoadError constructs a *LoadError with the given reason string. Reason
// strings match spec.md's wording exactly so callers can match on them.
func NewLoadError(reason string) *LoadError { return &LoadError{Reason: reason} }

// BadEdge reports that a dynamic-container loader's source or target id
// was negative or exceeded a pinned vertex count.
type BadEdge struct {
	Reason string
	ID     int64
}

func (e *BadEdge) Error() string { return fmt.Sprintf("model: bad edge: %s (id=%d)", e.Reason, e.ID) }

// NewBadEdge constructs a *BadEdge with the given reason and offending id.
func NewBadEdge(reason string, id int64) *BadEdge { return &BadEdge{Reason: reason, ID: id} }
