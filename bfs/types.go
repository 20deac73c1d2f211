package bfs

import "github.com/katalvlaran/graphcore/model"

// CancelKind is the traversal-control signal a caller passes to Cancel.
type CancelKind int

const (
	// ContinueSearch is the default: no cancellation in effect.
	ContinueSearch CancelKind = iota
	// CancelBranch skips expanding the most recently emitted vertex's own
	// out-edges; the rest of the frontier is still explored.
	CancelBranch
	// CancelAll stops the traversal outright; the next Next/NextStep call
	// reports exhaustion.
	CancelAll
)

// Step is a discovery-tree edge: To is the vertex a traversal step just
// emitted, From is the vertex it was discovered from. This is the
// vertices_breadth_first_search(g, seed) yield shape.
type Step[VId model.Integer] struct {
	From VId
	To   VId
}

// SourcedEdge pairs a discovery-tree edge record with the vertex that
// discovered it — the sourced_edges_breadth_first_search(g, seed) yield
// shape, the source_id-prepended incidence pattern views.Incidence's
// sourced variant applies to static adjacency, applied here to traversal
// discovery instead.
type SourcedEdge[VId model.Integer, ER any] struct {
	From VId
	Edge ER
}

type config[VId model.Integer] struct {
	seeds []VId
}

// Option configures a View at construction time.
type Option[VId model.Integer] func(*config[VId])

// WithSeeds sets the traversal's starting vertices. Without this option, a
// View seeds from the zero value of VId (vertex 0 for integer ids).
// Duplicate seeds, and seeds already visited by an earlier one in the
// list, are silently skipped, per spec.md section 4.5's multi-seed rule.
func WithSeeds[VId model.Integer](seeds ...VId) Option[VId] {
	return func(c *config[VId]) { c.seeds = append([]VId(nil), seeds...) }
}
