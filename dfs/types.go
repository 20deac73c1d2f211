package dfs

import "github.com/katalvlaran/graphcore/model"

// CancelKind is the traversal-control signal a caller passes to Cancel.
type CancelKind int

const (
	// ContinueSearch is the default: no cancellation in effect.
	ContinueSearch CancelKind = iota
	// CancelBranch skips expanding the most recently emitted vertex's own
	// out-edges: its subtree is pruned, but the rest of the stack is still
	// explored.
	CancelBranch
	// CancelAll stops the traversal outright; the next Next/NextStep call
	// reports exhaustion.
	CancelAll
)

// Step pairs a discovered vertex with its depth relative to the seed (a
// seed's direct children are at depth 1). This is the
// vertices_depth_first_search(g, seed) yield shape.
type Step[VId model.Integer] struct {
	Vertex VId
	Depth  int
}

// SourcedEdge pairs a discovery-tree edge record with the vertex that
// discovered it — the sourced_edges_depth_first_search(g, seed) yield
// shape.
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
