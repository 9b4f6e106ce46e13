// Package candidate - RNG policy for randomized strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical candidates.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each generation run owns its own.
package candidate

import "math/rand"

// DefaultSeed is the seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pickWeighted draws an index with probability proportional to weights.
// A zero total falls back to a uniform draw over len(weights).
//
// Complexity: O(len(weights)).
func pickWeighted(r Rand, weights []int) int {
	var total int64
	for _, w := range weights {
		total += int64(w)
	}
	if total == 0 {
		return r.Intn(len(weights))
	}

	x := r.Int63n(total)
	for i, w := range weights {
		if x < int64(w) {
			return i
		}
		x -= int64(w)
	}
	// Unreachable while weights are non-negative.
	return len(weights) - 1
}
