package main

import (
	"github.com/katalvlaran/pairwise/tabular"
	"github.com/katalvlaran/pairwise/universe"
	"github.com/spf13/cobra"
)

func (a *app) templateCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Rewrite a parameter template in normalized form",
		Long: `template trims and deduplicates values, merges multi-row templates into a
single data row, and fails on templates that cannot be generated from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			params, err := a.readParameters(input)
			if err != nil {
				return err
			}
			params = universe.Normalize(params)
			if err := universe.Validate(params); err != nil {
				return err
			}

			w, closeFn, err := a.create(output)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeFn(); err == nil {
					err = cerr
				}
			}()
			return tabular.WriteParameters(w, params)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "parameter template (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}
