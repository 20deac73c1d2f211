package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) is
// outside what a constructor accepts: below its minimum, or, for
// RandomRegular, a degree d >= n or an odd n*d.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates RandomSparse received a probability
// outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran with p strictly
// between 0 and 1 (RandomSparse) or any call at all (RandomRegular) but no
// *rand.Rand was supplied via WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates RandomRegular exhausted its bounded retry
// budget without finding a simple d-regular graph on n vertices for valid
// (n, d); invalid (n, d) are rejected earlier with ErrTooFewVertices.
var ErrConstructFailed = errors.New("builder: construction failed")
