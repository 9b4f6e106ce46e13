// SPDX-License-Identifier: MIT
// Package: pairwise/generate
//
// options.go: run configuration and functional options.
//
// Contract (strict):
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the round
//     loop itself never panics.
//   • Determinism is explicit: WithSeed or WithRand; no time-based seeding.
//   • Run re-validates an Options value and returns ErrBadOption, so values
//     coming from config files or requests never reach a panic.

package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pairwise/candidate"
)

// ErrBadOption indicates an Options field outside its documented range.
var ErrBadOption = errors.New("generate: invalid option value")

// Deterministic defaults.
const (
	DefaultRoundBudgetMultiplier = 10
	DefaultStagnationThreshold   = 0.95
	DefaultCheckpointInterval    = 100
	DefaultMaxRestarts           = 5
)

// Options configures a generation run.
//
// Strategy              – candidate strategy (default StrategyGreedy).
// BatchSize             – WeightedRandom candidates per round (≥1, default 50).
// RoundBudgetMultiplier – budget = MinimumRequired × multiplier (≥1).
// StagnationThreshold   – ratio in [0,1] expected at each checkpoint.
// CheckpointInterval    – rounds between stagnation checks (0 disables).
// MaxRestarts           – cap on stagnation restarts (≥0).
// Seed                  – seed for the default RNG (0 ⇒ candidate.DefaultSeed).
// Rand                  – explicit RNG; overrides Seed when non-nil.
// Logger                – receives Debug/Warn records; never the only signal.
// Observer              – receives round events (metrics).
type Options struct {
	Strategy              candidate.Strategy
	BatchSize             int
	RoundBudgetMultiplier int
	StagnationThreshold   float64
	CheckpointInterval    int
	MaxRestarts           int
	Seed                  int64
	Rand                  candidate.Rand
	Logger                *slog.Logger
	Observer              Observer
}

// Option represents a functional option for Generate.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:              candidate.StrategyGreedy,
		BatchSize:             candidate.DefaultBatchSize,
		RoundBudgetMultiplier: DefaultRoundBudgetMultiplier,
		StagnationThreshold:   DefaultStagnationThreshold,
		CheckpointInterval:    DefaultCheckpointInterval,
		MaxRestarts:           DefaultMaxRestarts,
	}
}

// Validate checks every numeric range and returns a wrapped ErrBadOption.
func (o Options) Validate() error {
	switch {
	case o.BatchSize < 1:
		return fmt.Errorf("%w: batch size must be ≥ 1, got %d", ErrBadOption, o.BatchSize)
	case o.RoundBudgetMultiplier < 1:
		return fmt.Errorf("%w: round budget multiplier must be ≥ 1, got %d", ErrBadOption, o.RoundBudgetMultiplier)
	case math.IsNaN(o.StagnationThreshold) || o.StagnationThreshold < 0 || o.StagnationThreshold > 1:
		return fmt.Errorf("%w: stagnation threshold must be in [0,1], got %v", ErrBadOption, o.StagnationThreshold)
	case o.CheckpointInterval < 0:
		return fmt.Errorf("%w: checkpoint interval must be ≥ 0, got %d", ErrBadOption, o.CheckpointInterval)
	case o.MaxRestarts < 0:
		return fmt.Errorf("%w: max restarts must be ≥ 0, got %d", ErrBadOption, o.MaxRestarts)
	}
	return nil
}

// WithStrategy selects the candidate strategy.
func WithStrategy(s candidate.Strategy) Option {
	if s != candidate.StrategyGreedy && s != candidate.StrategyWeightedRandom {
		panic(fmt.Sprintf("generate: WithStrategy(%d)", int(s)))
	}
	return func(o *Options) { o.Strategy = s }
}

// WithBatchSize sets the WeightedRandom batch size. Panics on n < 1.
func WithBatchSize(n int) Option {
	if n < 1 {
		panic("generate: WithBatchSize(n<1)")
	}
	return func(o *Options) { o.BatchSize = n }
}

// WithRoundBudgetMultiplier scales the round budget. Panics on m < 1.
func WithRoundBudgetMultiplier(m int) Option {
	if m < 1 {
		panic("generate: WithRoundBudgetMultiplier(m<1)")
	}
	return func(o *Options) { o.RoundBudgetMultiplier = m }
}

// WithStagnationThreshold sets the checkpoint coverage ratio. Panics outside [0,1].
func WithStagnationThreshold(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("generate: WithStagnationThreshold outside [0,1]")
	}
	return func(o *Options) { o.StagnationThreshold = f }
}

// WithCheckpointInterval sets the rounds between stagnation checks; 0
// disables them. Panics on n < 0.
func WithCheckpointInterval(n int) Option {
	if n < 0 {
		panic("generate: WithCheckpointInterval(n<0)")
	}
	return func(o *Options) { o.CheckpointInterval = n }
}

// WithMaxRestarts caps stagnation restarts. Panics on n < 0.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic("generate: WithMaxRestarts(n<0)")
	}
	return func(o *Options) { o.MaxRestarts = n }
}

// WithSeed seeds the default RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects the RNG. Panics on nil.
func WithRand(r candidate.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver attaches run instrumentation. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("generate: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = obs }
}
