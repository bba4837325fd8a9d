package handlers

import (
	"errors"
	"net/http"
	"site-route-planner/internal/api/dto"
	"site-route-planner/internal/domain"
	"site-route-planner/internal/platform/obs"
	"site-route-planner/internal/services"
)

type RouteHandler struct {
	Planner *services.Planner
	// ReturnToStart is the default when the request does not say.
	ReturnToStart bool
}

// Compute builds a fresh route over the current sites.
func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	returnToStart := h.ReturnToStart
	if req.ReturnToStart != nil {
		returnToStart = *req.ReturnToStart
	}

	plan, err := h.Planner.ComputeRouteWith(r.Context(), returnToStart)
	if err != nil {
		if errors.Is(err, services.ErrNoSites) {
			writeError(w, r, http.StatusUnprocessableEntity, "no sites available")
			return
		}
		obs.FromContext(r.Context()).Error("compute route failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, planResponse(plan))
}

// Current returns the last computed route, or 404 once a new site has
// invalidated it.
func (h *RouteHandler) Current(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.Planner.Route()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no route computed for the current sites")
		return
	}
	writeJSON(w, r, http.StatusOK, planResponse(plan))
}

func planResponse(p *domain.RoutePlan) dto.PlanResponse {
	stops := make([]dto.PlanStopResponse, 0, len(p.Stops))
	for _, s := range p.Stops {
		stops = append(stops, dto.PlanStopResponse{
			Position:    s.Position,
			SiteIndex:   s.SiteIndex,
			Label:       s.Label,
			LegDistance: s.LegDistance,
		})
	}

	return dto.PlanResponse{
		Tour:              p.Tour,
		ReturnToStart:     p.ReturnToStart,
		TotalDistance:     p.TotalDistance,
		ReturnLegDistance: p.ReturnLegDistance,
		Stops:             stops,
	}
}
