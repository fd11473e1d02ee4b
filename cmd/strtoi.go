package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
)

func addParseFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().IntVar(&a.opts.Base, "base", 0, "numeric base, 2 to 36, or 0 to detect 0x and 0 prefixes")
	cmd.Flags().StringVar(&a.opts.Delims, "delims", "", "characters allowed right after the number")
}

func newStrtoiCmd(a *app) *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "strtoi [flags] VALUE...",
		Short: "Convert values to an integer type, rejecting any trailing garbage",
		Example: `  typekit strtoi --type uint8 200 0x1f
  typekit strtoi --base 2 --delims , 1011,`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(cli.IntegerTypes, typ) {
				return fmt.Errorf("invalid --type %q, must be one of %s", typ, strings.Join(cli.IntegerTypes, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(args)
			if err != nil {
				return err
			}
			results, err := cli.ParseIntegers(inputs, typ, a.opts)
			if err != nil {
				return err
			}
			return a.emit(cmd, results)
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "int64", "target integer type")
	addParseFlags(cmd, a)
	return cmd
}
