package api

import (
	"net/http"
	"site-route-planner/internal/api/handlers"
	"site-route-planner/internal/config"
	"site-route-planner/internal/platform/metrics"
	"site-route-planner/internal/ports"
	"site-route-planner/internal/services"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	cfg config.Config,
	planner *services.Planner,
	renderer ports.Renderer,
	m *metrics.Metrics,
	logger *log.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware(logger))

	siteHandler := &handlers.SiteHandler{Planner: planner}
	routeHandler := &handlers.RouteHandler{
		Planner:       planner,
		ReturnToStart: cfg.ReturnToStart,
	}
	drawingHandler := &handlers.DrawingHandler{
		Planner:  planner,
		Renderer: renderer,
		Width:    cfg.CanvasWidth,
		Height:   cfg.CanvasHeight,
		Padding:  cfg.Padding,
	}

	r.Get("/health", handlers.Health)
	r.Get("/sites", siteHandler.List)
	r.Post("/sites", siteHandler.Add)
	r.Get("/route", routeHandler.Current)
	r.Post("/route", routeHandler.Compute)
	r.Get("/drawing.svg", drawingHandler.SVG)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
