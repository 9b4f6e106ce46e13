package candidate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pairwise/coverage"
	"github.com/katalvlaran/pairwise/universe"
)

// ErrUnknownStrategy indicates an unsupported Strategy value or name.
var ErrUnknownStrategy = errors.New("candidate: unknown strategy")

// DefaultBatchSize is the number of WeightedRandom candidates per round.
const DefaultBatchSize = 50

// Strategy selects the candidate construction algorithm.
type Strategy int

const (
	// StrategyGreedy is the seeded deterministic greedy (Strategy A).
	StrategyGreedy Strategy = iota

	// StrategyWeightedRandom is the weighted random sampler (Strategy B).
	StrategyWeightedRandom
)

// String returns the canonical name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyWeightedRandom:
		return "weighted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy. Accepted (case-insensitive):
// "greedy", "a" and "weighted", "random", "b".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy", "a", "":
		return StrategyGreedy, nil
	case "weighted", "random", "b":
		return StrategyWeightedRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s != StrategyGreedy && s != StrategyWeightedRandom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Rand is the source of randomness used by WeightedRandom.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Int63n(n int64) int64
}

// Generator produces the candidates of one round from the current coverage.
type Generator interface {
	// Candidates returns complete assignments to be scored by the caller.
	// It must not mutate t.
	Candidates(t *coverage.Tracker) []universe.Assignment

	// Deterministic reports whether Candidates is a pure function of t.
	Deterministic() bool
}

// Config carries the knobs of New. Zero values select defaults.
type Config struct {
	// BatchSize is the WeightedRandom batch size; ≤0 means DefaultBatchSize.
	BatchSize int

	// Rand is the WeightedRandom source; nil means NewRand(0).
	Rand Rand
}

// New returns the Generator for strategy s over u.
func New(s Strategy, u *universe.Universe, cfg Config) (Generator, error) {
	switch s {
	case StrategyGreedy:
		return NewGreedy(u), nil
	case StrategyWeightedRandom:
		return NewWeightedRandom(u, cfg.Rand, cfg.BatchSize), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
