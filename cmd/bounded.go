package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
)

func newBoundedCmd(a *app) *cobra.Command {
	var rng string
	cmd := &cobra.Command{
		Use:   "bounded [flags] VALUE...",
		Short: "Convert values to integers confined to a range",
		Long: `Convert values to 64 bit integers that must lie in --range. A range is an
interval such as [1,10], (0,+inf), [-5,5) or a comparison such as >=1, <100
or =7. Values below the range underflow and values above it overflow.`,
		Example: `  typekit bounded --range '[1,65535]' 80 70000`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(args)
			if err != nil {
				return err
			}
			results, err := cli.ParseInRange(inputs, rng, a.opts)
			if err != nil {
				return err
			}
			return a.emit(cmd, results)
		},
	}
	cmd.Flags().StringVarP(&rng, "range", "r", "", "allowed interval; empty allows every int64")
	addParseFlags(cmd, a)
	return cmd
}
