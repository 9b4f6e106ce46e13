package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/pairwise/candidate"
	"github.com/katalvlaran/pairwise/coverage"
	"github.com/katalvlaran/pairwise/universe"
)

// Generate computes a pairwise covering array for params.
//
// Errors: wrapped ErrInvalidInput before any universe is built; the
// context's error together with a partial Result on cancellation.
// Incomplete coverage is reported through Result, not as an error.
func Generate(ctx context.Context, params []universe.Parameter, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Run(ctx, params, o)
}

// Run is Generate with an explicit Options value, validated up front.
func Run(ctx context.Context, params []universe.Parameter, o Options) (Result, error) {
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	u, err := universe.Build(params)
	if err != nil {
		return Result{}, err
	}
	return runUniverse(ctx, u, o)
}

// GenerateUniverse runs the round loop over an already built universe.
func GenerateUniverse(ctx context.Context, u *universe.Universe, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	return runUniverse(ctx, u, o)
}

// runState is the mutable state of one run.
type runState struct {
	u       *universe.Universe
	tracker *coverage.Tracker
	cases   []universe.Assignment
	gains   []int
}

func (s *runState) restart() {
	s.cases, s.gains = nil, nil
	s.tracker.Reset()
}

func runUniverse(ctx context.Context, u *universe.Universe, o Options) (Result, error) {
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	obs := o.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	rng := o.Rand
	if rng == nil {
		rng = candidate.NewRand(o.Seed)
	}

	gen, err := candidate.New(o.Strategy, u, candidate.Config{BatchSize: o.BatchSize, Rand: rng})
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	st := &runState{u: u, tracker: coverage.New(u)}
	minimum := u.MinimumRequired()
	diag := Diagnostics{
		Strategy:        o.Strategy,
		StopReason:      StopConverged,
		MinimumRequired: minimum,
		RoundBudget:     minimum * o.RoundBudgetMultiplier,
	}

	var runErr error
	round := 0
	for !st.tracker.IsFull() {
		if err := ctx.Err(); err != nil {
			diag.StopReason, runErr = StopCancelled, err
			break
		}
		if round >= diag.RoundBudget {
			diag.StopReason = StopBudgetExhausted
			break
		}
		round++
		diag.TotalRounds++

		best, gain := bestCandidate(st.tracker, gen.Candidates(st.tracker))
		if gain > 0 {
			st.tracker.MarkCovered(best)
			st.cases = append(st.cases, best)
			st.gains = append(st.gains, gain)
		}
		obs.RoundCompleted(o.Strategy, gain)

		if !stagnated(o, gen, round, len(st.cases), minimum, st.tracker.Ratio()) {
			continue
		}
		if diag.Restarts >= o.MaxRestarts {
			diag.StopReason = StopNonConvergence
			break
		}
		diag.Restarts++
		logger.Warn("pairwise: stagnation restart",
			slog.Int("restart", diag.Restarts),
			slog.Int("round", round),
			slog.Float64("ratio", st.tracker.Ratio()),
		)
		obs.Restarted(o.Strategy, st.tracker.Ratio())
		st.restart()
		round = 0
	}
	diag.Rounds = round
	diag.Gains = st.gains

	res := assemble(st, diag)
	if res.Degraded() {
		logger.Warn("pairwise: incomplete coverage",
			slog.String("stop", string(diag.StopReason)),
			slog.Int("covered", res.Coverage.CoveredPairs),
			slog.Int("total", res.Coverage.TotalPairs),
			slog.Float64("ratio", res.Coverage.Ratio),
		)
	} else {
		logger.Debug("pairwise: converged",
			slog.String("strategy", o.Strategy.String()),
			slog.Int("cases", len(res.Cases)),
			slog.Int("rounds", diag.TotalRounds),
			slog.Int("restarts", diag.Restarts),
		)
	}
	obs.Finished(res, time.Since(start))

	return res, runErr
}

// bestCandidate scores cands without mutating t and returns the first one
// with the highest gain.
func bestCandidate(t *coverage.Tracker, cands []universe.Assignment) (universe.Assignment, int) {
	var best universe.Assignment
	bestGain := 0
	for _, a := range cands {
		if g := t.CountNewlyCovered(a); g > bestGain {
			best, bestGain = a, g
		}
	}
	return best, bestGain
}

// stagnated reports whether a checkpoint found coverage below threshold.
// Deterministic generators never restart: they would replay the same run.
func stagnated(o Options, gen candidate.Generator, round, accepted, minimum int, ratio float64) bool {
	if o.CheckpointInterval == 0 || gen.Deterministic() {
		return false
	}
	if round%o.CheckpointInterval != 0 || accepted < minimum {
		return false
	}
	return ratio < o.StagnationThreshold
}

func assemble(st *runState, diag Diagnostics) Result {
	cases := make([]universe.TestCase, len(st.cases))
	for k, a := range st.cases {
		cases[k] = st.u.TestCaseOf(a)
	}
	return Result{
		Parameters:  st.u.Parameters(),
		Cases:       cases,
		Coverage:    coverageOf(st.tracker),
		Diagnostics: diag,
	}
}

func coverageOf(t *coverage.Tracker) Coverage {
	return Coverage{
		CoveredPairs: t.CoveredCount(),
		TotalPairs:   t.Total(),
		Ratio:        t.Ratio(),
		FullyCovered: t.IsFull(),
	}
}

// Verify replays cases against the universe of params. Values unknown to
// params wrap ErrInvalidInput.
func Verify(params []universe.Parameter, cases []universe.TestCase) (Coverage, error) {
	u, err := universe.Build(params)
	if err != nil {
		return Coverage{}, err
	}
	assignments := make([]universe.Assignment, len(cases))
	for k, tc := range cases {
		a, err := u.AssignmentOf(tc)
		if err != nil {
			return Coverage{}, err
		}
		assignments[k] = a
	}
	return coverageOf(coverage.Replay(u, assignments)), nil
}
