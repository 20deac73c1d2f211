package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdos-Renyi-style graph over n vertices, n >= 1:
// every admissible pair is included independently with probability p. In
// the undirected case (the default) it considers unordered pairs {i, j}
// with i < j; with WithDirected(true) it considers every ordered pair
// (i, j), i != j.
//
// p must lie in [0, 1]; an RNG is required whenever 0 < p < 1 (p at the
// boundary is deterministic and needs none). Trial order is i ascending,
// then j ascending, so a fixed seed always reproduces the same edge set.
//
// Complexity: O(n) vertices, O(n^2) Bernoulli trials.
func RandomSparse[W model.Weight](n int, p float64, opts ...Option[W]) (Result[W], error) {
	if n < minRandomSparseVertices {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return Result[W]{}, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return Result[W]{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	include := func(i, j int) bool {
		switch {
		case cfg.rng == nil:
			return p == 1.0
		default:
			return cfg.rng.Float64() < p
		}
	}

	var edges []model.CopyableEdge[int, W]
	if cfg.directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || !include(i, j) {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				edges = append(edges, model.CopyableEdge[int, W]{Source: i, Target: j, Value: w})
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(i, j) {
					continue
				}
				edges = appendPair(edges, cfg, i, j)
			}
		}
	}
	sortEdges(edges)
	return Result[W]{VertexCount: n, Edges: edges}, nil
}
