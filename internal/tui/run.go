package tui

import (
	"context"
	"fmt"
	"site-route-planner/internal/services"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, planner *services.Planner) error {
	p := tea.NewProgram(New(ctx, planner), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
