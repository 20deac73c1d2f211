package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphcore/model"
)

// WeightFn produces one edge weight given an optional *rand.Rand source. It
// must be deterministic for a given RNG state; a nil rng means the graph is
// unweighted, and implementations must tolerate that without panicking.
type WeightFn[W model.Weight] func(rng *rand.Rand) W

// Result is a constructor's output: a vertex count and a (Source, Target)
// sorted edge list, ready for csr.Graph.LoadEdges or dynamic.Graph.LoadEdges.
type Result[W model.Weight] struct {
	VertexCount int
	Edges       []model.CopyableEdge[int, W]
}

// Option customizes a constructor by mutating a builderConfig before
// topology assembly begins.
type Option[W model.Weight] func(cfg *builderConfig[W])

// builderConfig holds the resolved, immutable-for-this-call settings every
// constructor reads: an optional RNG, a weight policy, and the directed/
// undirected choice. Each constructor call gets its own config.
type builderConfig[W model.Weight] struct {
	rng      *rand.Rand
	weightFn WeightFn[W]
	directed bool
}

// newBuilderConfig resolves defaults — no RNG, DefaultWeightFn (a Go zero
// value W on every call, i.e. unweighted), undirected — then applies opts
// in order; later options override earlier ones.
func newBuilderConfig[W model.Weight](opts ...Option[W]) *builderConfig[W] {
	cfg := &builderConfig[W]{
		rng:      nil,
		weightFn: DefaultWeightFn[W],
		directed: false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for this call, for reproducible
// stochastic output.
func WithSeed[W model.Weight](seed int64) Option[W] {
	return func(cfg *builderConfig[W]) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand[W model.Weight](r *rand.Rand) Option[W] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig[W]) { cfg.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn[W model.Weight](fn WeightFn[W]) Option[W] {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(cfg *builderConfig[W]) { cfg.weightFn = fn }
}

// WithDirected selects whether a constructor emits one arc per logical
// connection (directed, the default is false i.e. undirected) or both
// directions. For Star's and Wheel's spokes, directed means the center
// points at the leaves; undirected emits both directions. RandomRegular
// ignores this option.
func WithDirected[W model.Weight](directed bool) Option[W] {
	return func(cfg *builderConfig[W]) { cfg.directed = directed }
}
