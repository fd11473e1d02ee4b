package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
)

func newPortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "port PORT|ADDRESS:PORT...",
		Short:   "Parse port numbers and IPv4 endpoints",
		Example: `  typekit port 8080 10.0.0.1:53`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, cli.ParsePorts(inputs))
		},
	}
}
