// Package cli implements the planner command-line interface.
//
// Commands share one config and one logger; the logger travels in the
// command context and is read back with obs.FromContext.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"site-route-planner/internal/config"
	"site-route-planner/internal/platform/obs"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute runs the planner CLI.
func Execute() error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "planner",
		Short:        "Plan a visiting order over equipment drop-off sites",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.LogLevel = "debug"
			}

			logger, err := obs.NewLogger(errOut, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("planner: %w", err)
			}

			opts.cfg = cfg
			cmd.SetContext(obs.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newRouteCmd(opts))

	return root
}
