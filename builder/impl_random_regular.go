package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcore/model"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 100
)

// RandomRegular builds an undirected simple d-regular graph over n
// vertices via stub-matching: n >= 1, 0 <= d < n, and n*d must be even
// (otherwise no d-regular simple graph on n vertices exists).
//
// A fresh stub list of length n*d (vertex i repeated d times) is shuffled
// by cfg.rng and paired off two at a time; a pairing that produces a
// self-loop or a repeated edge is discarded and reshuffled, up to
// maxStubMatchingAttempts times. WithDirected is ignored: the construction
// is inherently undirected.
//
// Complexity: O(n*d) per attempt, a constant number of attempts.
func RandomRegular[W model.Weight](n, d int, opts ...Option[W]) (Result[W], error) {
	if n < minRRVertices {
		return Result[W]{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return Result[W]{}, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return Result[W]{}, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	cfg.directed = false
	if cfg.rng == nil {
		return Result[W]{}, fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
	}

	stubCount := n * d
	if stubCount == 0 {
		return Result[W]{VertexCount: n, Edges: nil}, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]struct{}, stubCount/2)
		valid := true
		for i := 0; i < stubCount && valid; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		edges := make([]model.CopyableEdge[int, W], 0, stubCount)
		for i := 0; i < stubCount; i += 2 {
			edges = appendPair(edges, cfg, stubs[i], stubs[i+1])
		}
		sortEdges(edges)
		return Result[W]{VertexCount: n, Edges: edges}, nil
	}

	return Result[W]{}, fmt.Errorf("%s: failed to construct after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
}
