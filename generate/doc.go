// Package generate drives pairwise covering-array generation round by round.
//
// Overview:
//
//   - Generate builds the pair universe once, then loops: each round asks a
//     candidate.Generator for a batch, scores every candidate with
//     coverage.Tracker.CountNewlyCovered, and accepts the first
//     highest-scoring candidate only if it covers at least one new pair.
//   - The loop stops on full coverage (StopConverged), an exhausted round
//     budget (StopBudgetExhausted), a capped run of stagnation restarts
//     (StopNonConvergence) or a cancelled context (StopCancelled).
//
// Budget and stagnation:
//
//   - MinimumRequired = product of the two largest value counts.
//   - RoundBudget     = MinimumRequired × RoundBudgetMultiplier (default ×10).
//   - Every CheckpointInterval rounds (default 100), once MinimumRequired
//     cases were accepted, a coverage ratio below StagnationThreshold
//     (default 0.95) discards the cases, resets coverage and restarts the
//     round counter. Restarts apply to randomized strategies only and are
//     capped by MaxRestarts (default 5).
//
// Degraded success:
//
//   - Only StopCancelled comes with an error (the context's). Every other
//     incomplete run returns a nil error and a Result whose Coverage reports
//     the exact shortfall; callers decide whether to retry with a larger
//     budget or another strategy.
//
// Errors (sentinel):
//
//   - universe.ErrInvalidInput (re-exported as ErrInvalidInput): fewer
//     than 2 parameters, empty/duplicate names, missing or empty values.
//   - ErrBadOption: Run received out-of-range Options.
//   - candidate.ErrUnknownStrategy: unsupported Strategy.
//
// Options:
//
//	res, err := generate.Generate(ctx, params,
//	    generate.WithStrategy(candidate.StrategyWeightedRandom),
//	    generate.WithSeed(42),
//	    generate.WithLogger(logger),
//	)
//
// Option constructors panic on meaningless values; Run validates an Options
// value and returns ErrBadOption instead, for configuration-driven callers.
//
// Thread safety:
//
//   - Every call owns its universe, tracker and RNG; concurrent calls need no
//     coordination. A single Observer or injected Rand shared between calls
//     must be safe for that use.
package generate
