package dijkstra

import (
	"github.com/katalvlaran/graphcore/model"
)

// Result is the outcome of a single ShortestPaths run, seeded at one source
// vertex.
type Result[VId model.Integer, W model.Weight] struct {
	// Distance maps every vertex id ShortestPaths visited to its minimum
	// distance from the source; unreachable vertices are absent (check
	// Reachable instead of a zero-value sentinel, since W may be any
	// numeric type with no natural "infinity").
	Distance map[VId]W
	// Reachable reports, for every vertex id, whether it was reached from
	// the source at all.
	Reachable map[VId]bool
	// Predecessor maps every reachable non-source vertex to the vertex it
	// was relaxed from on its shortest path; Predecessor[source] ==
	// source. Populated only when ReturnPath() is passed to ShortestPaths.
	Predecessor map[VId]VId
}

// Options configures a ShortestPaths run.
type Options struct {
	returnPath bool
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// ReturnPath enables populating Result.Predecessor for path
// reconstruction. Without it, Result.Predecessor is nil.
func ReturnPath() Option {
	return func(o *Options) { o.returnPath = true }
}
