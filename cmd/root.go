package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vipcxj/typekit/internal/cli"
	"github.com/vipcxj/typekit/internal/config"
	"github.com/vipcxj/typekit/internal/logging"
)

// Version is set at build time with -ldflags "-X github.com/vipcxj/typekit/cmd.Version=...".
var Version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errConversion marks runs where some input failed; the failures were
// already reported.
var errConversion = errors.New("some inputs could not be converted")

// app holds the state of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	opts       cli.Options
	log        *logrus.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "typekit",
		Short: "Strict integer, address, port and range conversions",
		Long: `typekit converts text into checked values: integers of a chosen width and
base, integers confined to a range, IPv4 and multicast addresses, ports and
natural number filters. Results are printed as text, JSON, YAML or CBOR, or
exported as shell variable assignments for scripts to eval.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml); defaults to $"+config.EnvVar)
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level")
	pf.StringVar(&a.logFormat, "log-format", logging.TextFormat, "log format (text|json)")
	cli.FormatVar(pf, &a.opts.Format, "format", cli.FormatText, "output format")
	cli.ShellTypeVar(pf, &a.opts.Shell, "shell", cli.ShellTypeAuto, "shell syntax for --export")
	pf.StringVar(&a.opts.Export, "export", "", "print a shell assignment of the results to this variable instead")
	pf.BoolVar(&a.opts.Persist, "persist", false, "make exported variables persistent (export, setx, user environment)")
	pf.StringVar(&a.opts.EnvPrefix, "env-prefix", "", "prefix of exported variable names")
	pf.StringSliceVar(&a.opts.MultiFormat, "multi-format", nil,
		"split arguments into values and join exported values ("+strings.Join(cli.AllowedMultiFormats, "|")+")")

	root.AddCommand(
		newStrtoiCmd(a),
		newBoundedCmd(a),
		newIPv4Cmd(a),
		newPortCmd(a),
		newFilterCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the config file, lets explicit flags override it and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("base") {
		a.opts.Base = cfg.Parse.Base
	}
	if !flags.Changed("delims") {
		a.opts.Delims = cfg.Parse.Delims
	}
	if !flags.Changed("format") && cfg.Output.Format != "" {
		if a.opts.Format, err = cli.FormatString(cfg.Output.Format); err != nil {
			return fmt.Errorf("config output.format: %w", err)
		}
	}
	if !flags.Changed("shell") && cfg.Output.Shell != "" {
		if a.opts.Shell, err = cli.ShellTypeString(cfg.Output.Shell); err != nil {
			return fmt.Errorf("config output.shell: %w", err)
		}
	}
	if !flags.Changed("env-prefix") {
		a.opts.EnvPrefix = cfg.Output.EnvPrefix
	}
	if !flags.Changed("multi-format") && cfg.Output.MultiFormat != "" {
		a.opts.MultiFormat = strings.Split(cfg.Output.MultiFormat, ",")
	}
	if !flags.Changed("log-level") {
		a.logLevel = cfg.Log.Level
	}
	if !flags.Changed("log-format") {
		a.logFormat = cfg.Log.Format
	}
	if err := cli.CheckMultiFormat(a.opts.MultiFormat); err != nil {
		return err
	}

	a.log, err = logging.New(os.Stderr, logging.WithLevel(a.logLevel), logging.WithFormat(a.logFormat))
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.configPath,
		"base":    a.opts.Base,
		"format":  a.opts.Format.String(),
	}).Debug("configured")
	return nil
}

// inputs expands the positional arguments with the multi format.
func (a *app) inputs(args []string) ([]string, error) {
	return cli.ParseMultiValues(a.opts.MultiFormat, args)
}

// emit prints or exports results and reports every failure.
func (a *app) emit(cmd *cobra.Command, results []cli.Result) error {
	out := cmd.OutOrStdout()
	var err error
	if a.opts.Export != "" {
		err = cli.Export(out, a.opts.Export, a.opts, results)
	} else {
		err = cli.Render(out, a.opts.Format, results)
	}
	if err != nil {
		return err
	}

	failed := 0
	for i := range results {
		if f, ok := cli.FailureOf(&results[i]); ok {
			failed++
			a.log.WithFields(logrus.Fields{"input": f.Input, "status": f.Status}).Warn("conversion failed")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errConversion, failed, len(results))
	}
	return nil
}

// Execute runs the command line and returns the process exit code: 0 on
// success, 1 when some input failed and 2 for usage and setup errors.
func Execute() int {
	a := &app{}
	root := newRootCmd(a)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errConversion):
		return exitFailure
	}
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	return exitUsage
}
