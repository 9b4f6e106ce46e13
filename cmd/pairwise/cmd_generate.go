package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/spf13/cobra"
)

// errDegraded is returned under --strict when coverage is incomplete.
var errDegraded = errors.New("coverage incomplete")

type generateFlags struct {
	input     string
	output    string
	format    string
	strategy  string
	seed      int64
	batch     int
	budget    int
	threshold float64
	every     int
	restarts  int
	timeout   time.Duration
	strict    bool
}

func (a *app) generateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a covering test suite from a parameter template",
		Example: `  pairwise generate -i params.csv
  pairwise generate -i params.csv --strategy weighted --seed 7 -o cases.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "-", "parameter template (.csv/.txt or .xlsx; - for stdin)")
	fl.StringVarP(&f.output, "output", "o", "-", "output file (- for stdout)")
	fl.StringVar(&f.format, "format", "", "output format: csv|json|xlsx (default from -o extension, else csv)")
	fl.StringVar(&f.strategy, "strategy", "", "candidate strategy: greedy|weighted")
	fl.Int64Var(&f.seed, "seed", 0, "random seed for the weighted strategy")
	fl.IntVar(&f.batch, "batch", 0, "weighted candidates per round")
	fl.IntVar(&f.budget, "budget-multiplier", 0, "round budget as a multiple of the minimum suite size")
	fl.Float64Var(&f.threshold, "threshold", 0, "coverage ratio expected at each checkpoint")
	fl.IntVar(&f.every, "checkpoint", 0, "rounds between stagnation checkpoints (0 disables)")
	fl.IntVar(&f.restarts, "max-restarts", 0, "stagnation restarts before giving up")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort generation after this long")
	fl.BoolVar(&f.strict, "strict", false, "exit non-zero when coverage is incomplete")
	_ = cmd.MarkFlagFilename("input", "csv", "txt", "xlsx")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) error {
	g := &a.cfg.Generation
	fl := cmd.Flags()
	if fl.Changed("strategy") {
		g.Strategy = f.strategy
	}
	if fl.Changed("seed") {
		g.Seed = f.seed
	}
	if fl.Changed("batch") {
		g.BatchSize = f.batch
	}
	if fl.Changed("budget-multiplier") {
		g.RoundBudgetMultiplier = f.budget
	}
	if fl.Changed("threshold") {
		g.StagnationThreshold = f.threshold
	}
	if fl.Changed("checkpoint") {
		g.CheckpointInterval = f.every
	}
	if fl.Changed("max-restarts") {
		g.MaxRestarts = f.restarts
	}
	if fl.Changed("timeout") {
		g.Timeout = f.timeout
	}

	format, err := outputFormat(f.format, f.output)
	if err != nil {
		return err
	}
	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = a.logger

	params, err := a.readParameters(f.input)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	res, err := generate.Run(ctx, params, opts)
	if err != nil {
		return err
	}
	if err := a.writeResult(f.output, format, res); err != nil {
		return err
	}

	if res.Degraded() {
		fmt.Fprintf(a.stderr, "warning: %d of %d pairs uncovered (stop reason %s, strategy %s)\n",
			res.Coverage.Missing(), res.Coverage.TotalPairs, res.Diagnostics.StopReason, res.Diagnostics.Strategy)
		if f.strict {
			return errDegraded
		}
	}
	return nil
}
