// Package coverage tracks which pairs of a universe are covered by the
// test cases accepted so far.
//
// The Tracker separates a pure scoring query (CountNewlyCovered) from the
// only mutation (MarkCovered), so a caller can score any number of
// candidates before committing one. Reset clears the state for a restart.
//
// A Tracker is not safe for concurrent mutation; each generation run owns
// its own Tracker.
package coverage

import "github.com/katalvlaran/pairwise/universe"

// Tracker holds the covered subset of a pair universe.
type Tracker struct {
	u       *universe.Universe
	covered []bool
	count   int
}

// New returns a Tracker with nothing covered.
func New(u *universe.Universe) *Tracker {
	return &Tracker{u: u, covered: make([]bool, u.Size())}
}

// Universe returns the universe the tracker covers.
func (t *Tracker) Universe() *universe.Universe { return t.u }

// CountNewlyCovered returns how many pairs a would satisfy that are not yet
// covered. It never mutates the tracker.
//
// Complexity: O(n²) for n parameters.
func (t *Tracker) CountNewlyCovered(a universe.Assignment) int {
	gain := 0
	t.u.Satisfied(a, func(id int) {
		if !t.covered[id] {
			gain++
		}
	})
	return gain
}

// MarkCovered adds every pair a satisfies and returns how many were new.
func (t *Tracker) MarkCovered(a universe.Assignment) int {
	gain := 0
	t.u.Satisfied(a, func(id int) {
		if !t.covered[id] {
			t.covered[id] = true
			gain++
		}
	})
	t.count += gain
	return gain
}

// Covered reports whether pair id is covered.
func (t *Tracker) Covered(id int) bool { return t.covered[id] }

// CoveredCount returns the number of covered pairs.
func (t *Tracker) CoveredCount() int { return t.count }

// Total returns the universe size.
func (t *Tracker) Total() int { return len(t.covered) }

// Ratio returns CoveredCount()/Total() in [0,1]. An empty universe is fully
// covered by definition.
func (t *Tracker) Ratio() float64 {
	if len(t.covered) == 0 {
		return 1
	}
	return float64(t.count) / float64(len(t.covered))
}

// IsFull reports whether every pair is covered.
func (t *Tracker) IsFull() bool { return t.count == len(t.covered) }

// Reset clears the covered set.
func (t *Tracker) Reset() {
	for i := range t.covered {
		t.covered[i] = false
	}
	t.count = 0
}

// Uncovered returns the IDs of uncovered pairs in ascending order.
func (t *Tracker) Uncovered() []int {
	out := make([]int, 0, len(t.covered)-t.count)
	for id, c := range t.covered {
		if !c {
			out = append(out, id)
		}
	}
	return out
}

// UncoveredByValue returns, per parameter and value, the number of
// uncovered pairs that touch that value.
//
// Complexity: O(Size()).
func (t *Tracker) UncoveredByValue() [][]int {
	n := t.u.NumParameters()
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, t.u.NumValues(i))
	}
	for id, c := range t.covered {
		if c {
			continue
		}
		i, a, j, b := t.u.Endpoints(id)
		w[i][a]++
		w[j][b]++
	}
	return w
}

// Replay returns a Tracker covering everything the given cases satisfy.
func Replay(u *universe.Universe, cases []universe.Assignment) *Tracker {
	t := New(u)
	for _, a := range cases {
		t.MarkCovered(a)
	}
	return t
}
