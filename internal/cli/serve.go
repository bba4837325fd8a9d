package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"site-route-planner/internal/adapters/render"
	"site-route-planner/internal/api"
	"site-route-planner/internal/platform/metrics"
	"site-route-planner/internal/platform/obs"
	"site-route-planner/internal/services"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner session over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := obs.FromContext(ctx)
			m := metrics.New()
			planner := services.NewPlanner(opts.cfg.ReturnToStart, m)
			router := api.NewRouter(opts.cfg, planner, render.NewSVGRenderer(), m, logger)

			srv := &http.Server{
				Addr:              ":" + opts.cfg.Port,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("shutting down")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("serve: shutdown: %w", err)
			}
			return nil
		},
	}
}
