package handlers

import (
	"errors"
	"net/http"
	"site-route-planner/internal/api/dto"
	"site-route-planner/internal/domain"
	"site-route-planner/internal/services"
)

// SiteHandler exposes the session's site collection.
type SiteHandler struct {
	Planner *services.Planner
}

func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	sites := h.Planner.Sites()

	res := dto.ListSitesResponse{
		Sites: make([]dto.SiteResponse, 0, len(sites)),
	}
	for i, s := range sites {
		res.Sites = append(res.Sites, siteResponse(i, s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Add validates the submitted coordinates and appends a site.
// Adding a site drops any previously computed route.
func (h *SiteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddSiteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	idx, site, err := h.Planner.AddSite(r.Context(), req.Label, req.X.String(), req.Y.String())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			writeError(w, r, http.StatusBadRequest, "invalid input: please enter numeric values for coordinates")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, siteResponse(idx, site))
}

func siteResponse(i int, s domain.Site) dto.SiteResponse {
	return dto.SiteResponse{
		Index: i,
		Label: s.Label,
		X:     s.Position.X,
		Y:     s.Position.Y,
	}
}
