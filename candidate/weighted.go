package candidate

import (
	"github.com/katalvlaran/pairwise/coverage"
	"github.com/katalvlaran/pairwise/universe"
)

// WeightedRandom is the weighted random sampling strategy.
type WeightedRandom struct {
	u     *universe.Universe
	rng   Rand
	batch int
}

// NewWeightedRandom returns a WeightedRandom generator over u. A nil r uses
// NewRand(0); batch ≤ 0 uses DefaultBatchSize.
func NewWeightedRandom(u *universe.Universe, r Rand, batch int) *WeightedRandom {
	if r == nil {
		r = NewRand(0)
	}
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &WeightedRandom{u: u, rng: r, batch: batch}
}

// Deterministic always reports false.
func (w *WeightedRandom) Deterministic() bool { return false }

// BatchSize returns the number of candidates per round.
func (w *WeightedRandom) BatchSize() int { return w.batch }

// Candidates draws BatchSize candidates against one weight snapshot.
func (w *WeightedRandom) Candidates(t *coverage.Tracker) []universe.Assignment {
	weights := t.UncoveredByValue()
	out := make([]universe.Assignment, w.batch)
	for k := range out {
		out[k] = w.draw(weights)
	}
	return out
}

// Draw returns a single weighted candidate for the current coverage.
func (w *WeightedRandom) Draw(t *coverage.Tracker) universe.Assignment {
	return w.draw(t.UncoveredByValue())
}

func (w *WeightedRandom) draw(weights [][]int) universe.Assignment {
	a := make(universe.Assignment, len(weights))
	for i, row := range weights {
		a[i] = pickWeighted(w.rng, row)
	}
	return a
}
