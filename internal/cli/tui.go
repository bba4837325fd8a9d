package cli

import (
	"io"
	"site-route-planner/internal/platform/obs"
	"site-route-planner/internal/services"
	"site-route-planner/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Enter sites and draw the route interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would corrupt the alternate screen.
			ctx := obs.WithLogger(cmd.Context(), log.New(io.Discard))
			planner := services.NewPlanner(opts.cfg.ReturnToStart, nil)
			return tui.Run(ctx, planner)
		},
	}
}
