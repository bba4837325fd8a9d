package ports

import (
	"io"
	"site-route-planner/internal/domain"
)

// Contract for drawing a frame of mapped sites and, when present, the
// planned route over them.
type Renderer interface {
	// Render writes the drawing for frame to w. plan may be nil.
	Render(w io.Writer, sites []domain.Site, frame domain.Frame, plan *domain.RoutePlan) error
}
