package generate

import (
	"time"

	"github.com/katalvlaran/pairwise/candidate"
	"github.com/katalvlaran/pairwise/universe"
)

// ErrInvalidInput is universe.ErrInvalidInput, re-exported for callers that
// only import generate.
var ErrInvalidInput = universe.ErrInvalidInput

// StopReason records why the round loop ended.
type StopReason string

const (
	// StopConverged means every pair is covered.
	StopConverged StopReason = "converged"

	// StopBudgetExhausted means the round budget ran out first.
	StopBudgetExhausted StopReason = "budget_exhausted"

	// StopNonConvergence means stagnation persisted past MaxRestarts.
	StopNonConvergence StopReason = "non_convergence"

	// StopCancelled means the context was done before convergence.
	StopCancelled StopReason = "cancelled"
)

// Coverage reports how much of the pair universe a suite covers.
type Coverage struct {
	CoveredPairs int     `json:"coveredPairs"`
	TotalPairs   int     `json:"totalPairs"`
	Ratio        float64 `json:"ratio"`
	FullyCovered bool    `json:"fullyCovered"`
}

// Missing returns the number of uncovered pairs.
func (c Coverage) Missing() int { return c.TotalPairs - c.CoveredPairs }

// Diagnostics describes how a run unfolded.
type Diagnostics struct {
	Strategy        candidate.Strategy `json:"strategy"`
	StopReason      StopReason         `json:"stopReason"`
	Rounds          int                `json:"rounds"`      // rounds of the final attempt
	TotalRounds     int                `json:"totalRounds"` // rounds across all attempts
	Restarts        int                `json:"restarts"`
	MinimumRequired int                `json:"minimumRequired"`
	RoundBudget     int                `json:"roundBudget"`
	Gains           []int              `json:"gains"` // newly covered pairs per accepted case
}

// Result is the outcome of a generation run.
type Result struct {
	// Parameters are the normalized parameters, in column order.
	Parameters []universe.Parameter `json:"parameters"`

	// Cases are complete test cases in generation order.
	Cases []universe.TestCase `json:"cases"`

	Coverage    Coverage    `json:"coverage"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Degraded reports whether the run ended without full coverage.
func (r Result) Degraded() bool { return !r.Coverage.FullyCovered }

// Header returns the parameter names in column order.
func (r Result) Header() []string {
	h := make([]string, len(r.Parameters))
	for i, p := range r.Parameters {
		h[i] = p.Name
	}
	return h
}

// Rows renders every case as a row in parameter column order.
func (r Result) Rows() [][]string {
	rows := make([][]string, len(r.Cases))
	for k, tc := range r.Cases {
		row := make([]string, len(r.Parameters))
		for i, p := range r.Parameters {
			row[i] = tc[p.Name]
		}
		rows[k] = row
	}
	return rows
}

// Observer receives run events. Implementations must be cheap; they run
// inside the round loop.
type Observer interface {
	// RoundCompleted is called after every round; gain is 0 when no
	// candidate was accepted.
	RoundCompleted(strategy candidate.Strategy, gain int)

	// Restarted is called when stagnation triggers a restart.
	Restarted(strategy candidate.Strategy, ratio float64)

	// Finished is called once with the final result.
	Finished(res Result, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) RoundCompleted(candidate.Strategy, int) {}
func (nopObserver) Restarted(candidate.Strategy, float64) {}
func (nopObserver) Finished(Result, time.Duration) {}
