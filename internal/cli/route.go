package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"site-route-planner/internal/adapters/render"
	"site-route-planner/internal/services"
	"site-route-planner/internal/tui"

	"github.com/spf13/cobra"
)

type routeOptions struct {
	svgPath       string
	returnToStart bool
}

func newRouteCmd(root *rootOptions) *cobra.Command {
	opts := &routeOptions{}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Read label,x,y rows from stdin and print the visiting order",
		Long: `Reads one site per CSV row (label,x,y) from standard input, builds the
nearest-neighbor route starting at the first row and prints the order and
total distance. Blank lines and lines starting with # are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			returnToStart := root.cfg.ReturnToStart
			if cmd.Flags().Changed("return") {
				returnToStart = opts.returnToStart
			}
			planner := services.NewPlanner(returnToStart, nil)

			if err := readSites(cmd.Context(), cmd.InOrStdin(), planner); err != nil {
				return err
			}

			plan, err := planner.ComputeRoute(cmd.Context())
			if err != nil {
				if errors.Is(err, services.ErrNoSites) {
					return errors.New("route: no locations added")
				}
				return err
			}

			for _, line := range tui.FormatPlan(plan) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if opts.svgPath == "" {
				return nil
			}
			return writeSVG(opts.svgPath, planner, root)
		},
	}

	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write the drawing to this SVG file")
	cmd.Flags().BoolVar(&opts.returnToStart, "return", false, "count the return leg in the total distance")
	return cmd
}

func readSites(ctx context.Context, in io.Reader, planner *services.Planner) error {
	r := csv.NewReader(in)
	r.Comment = '#'
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("route: read sites: %w", err)
		}

		line, _ := r.FieldPos(0)
		if _, _, err := planner.AddSite(ctx, rec[0], rec[1], rec[2]); err != nil {
			return fmt.Errorf("route: line %d: %w", line, err)
		}
	}
}

func writeSVG(path string, planner *services.Planner, root *rootOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("route: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("route: close %q: %w", path, cerr)
		}
	}()

	sites, plan := planner.Snapshot()
	frame := services.MapToDrawing(sites, root.cfg.CanvasWidth, root.cfg.CanvasHeight, root.cfg.Padding)
	if err := render.NewSVGRenderer().Render(f, sites, frame, plan); err != nil {
		return fmt.Errorf("route: write %q: %w", path, err)
	}
	return nil
}
