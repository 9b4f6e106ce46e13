package main

import (
	"fmt"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/spf13/cobra"
)

func (a *app) verifyCmd() *cobra.Command {
	var input, cases string
	var strict bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report the pair coverage of an existing test-case table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := a.readParameters(input)
			if err != nil {
				return err
			}
			tcs, err := a.readCases(cases)
			if err != nil {
				return err
			}
			cov, err := generate.Verify(params, tcs)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "cases: %d\ncovered pairs: %d/%d (%.2f%%)\n",
				len(tcs), cov.CoveredPairs, cov.TotalPairs, 100*cov.Ratio)
			if !cov.FullyCovered {
				fmt.Fprintf(a.stdout, "missing pairs: %d\n", cov.Missing())
				if strict {
					return errDegraded
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "parameter template")
	cmd.Flags().StringVarP(&cases, "cases", "c", "", "test-case table (- for stdin)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when coverage is incomplete")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("cases")
	return cmd
}
