package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
)

func newIPv4Cmd(a *app) *cobra.Command {
	var multicast bool
	cmd := &cobra.Command{
		Use:     "ipv4 [flags] ADDRESS...",
		Short:   "Parse dotted quad IPv4 addresses",
		Example: `  typekit ipv4 --multicast 239.0.0.1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(args)
			if err != nil {
				return err
			}
			return a.emit(cmd, cli.ParseAddresses(inputs, multicast))
		},
	}
	cmd.Flags().BoolVarP(&multicast, "multicast", "m", false, "require addresses in 224.0.0.0-239.255.255.255")
	return cmd
}
