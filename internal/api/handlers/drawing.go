package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"site-route-planner/internal/platform/obs"
	"site-route-planner/internal/ports"
	"site-route-planner/internal/services"
	"strconv"
)

const maxDrawingSize = 10000

type DrawingHandler struct {
	Planner  *services.Planner
	Renderer ports.Renderer
	Width    float64
	Height   float64
	Padding  float64
}

// SVG renders the current sites, and the current route when present.
func (h *DrawingHandler) SVG(w http.ResponseWriter, r *http.Request) {
	width, err := sizeParam(r, "width", h.Width)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	height, err := sizeParam(r, "height", h.Height)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sites, plan := h.Planner.Snapshot()
	frame := services.MapToDrawing(sites, width, height, h.Padding)

	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, sites, frame, plan); err != nil {
		obs.FromContext(r.Context()).Error("render drawing failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func sizeParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > maxDrawingSize {
		return 0, fmt.Errorf("%s must be a number between 0 and %d", name, maxDrawingSize)
	}
	return v, nil
}
