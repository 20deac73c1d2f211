package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphcore/model"
)

// DefaultWeightFn returns W's zero value regardless of rng, matching an
// unweighted topology (csr and dynamic store that zero value like any
// other edge value).
func DefaultWeightFn[W model.Weight](_ *rand.Rand) W {
	var zero W
	return zero
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn[W model.Weight](value W) WeightFn[W] {
	return func(_ *rand.Rand) W { return value }
}

// UniformIntWeightFn returns a WeightFn sampling uniformly over the closed
// integer interval [min, max]. If rng is nil, it returns min, preserving a
// deterministic fallback instead of panicking.
func UniformIntWeightFn(min, max int) WeightFn[int] {
	if max < min {
		panic("builder: UniformIntWeightFn(max < min)")
	}
	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}
