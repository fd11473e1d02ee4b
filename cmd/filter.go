package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
)

func newFilterCmd(a *app) *cobra.Command {
	var tests []int
	cmd := &cobra.Command{
		Use:   "filter [flags] EXPR...",
		Short: "Normalize natural number filters and test numbers against them",
		Long: `A filter is a list of tokens joined by '_': N, N-M, N-, -M or all. Numbers
must not decrease from one token to the next. The normalized filter is
printed, and with --test the given numbers are split into accepted and
rejected ones.`,
		Example: `  typekit filter --format yaml --test 3,8 1-5_9-`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, cli.ParseFilters(inputs, tests))
		},
	}
	cmd.Flags().IntSliceVar(&tests, "test", nil, "numbers to test against each filter")
	return cmd
}
