package candidate

import (
	"github.com/katalvlaran/pairwise/coverage"
	"github.com/katalvlaran/pairwise/universe"
)

// Greedy is the seeded deterministic greedy strategy.
type Greedy struct {
	u *universe.Universe
}

// NewGreedy returns a Greedy generator over u.
func NewGreedy(u *universe.Universe) *Greedy {
	return &Greedy{u: u}
}

// Deterministic always reports true.
func (g *Greedy) Deterministic() bool { return true }

// Candidates returns one FromSeed candidate per uncovered pair, in
// ascending pair ID order.
func (g *Greedy) Candidates(t *coverage.Tracker) []universe.Assignment {
	seeds := t.Uncovered()
	out := make([]universe.Assignment, 0, len(seeds))
	for _, id := range seeds {
		out = append(out, g.FromSeed(t, id))
	}
	return out
}

// FromSeed builds the complete candidate anchored on pair seed.
//
// The seed's two parameters are fixed first. Every other parameter, in
// declared order, takes the value forming the most uncovered pairs with the
// values fixed so far; the earliest declared value wins ties.
//
// Complexity: O(n² · v).
func (g *Greedy) FromSeed(t *coverage.Tracker, seed int) universe.Assignment {
	u := g.u
	a := u.NewAssignment()

	i, va, j, vb := u.Endpoints(seed)
	a[i], a[j] = va, vb
	fixed := make([]int, 0, len(a))
	fixed = append(fixed, i, j)

	for p := range a {
		if a[p] != universe.Unassigned {
			continue
		}
		best, bestScore := 0, -1
		for v := 0; v < u.NumValues(p); v++ {
			score := 0
			for _, q := range fixed {
				if !t.Covered(u.ID(p, v, q, a[q])) {
					score++
				}
			}
			if score > bestScore {
				best, bestScore = v, score
			}
		}
		a[p] = best
		fixed = append(fixed, p)
	}

	return a
}
