package services

import (
	"context"
	"fmt"
	"site-route-planner/internal/domain"
	"site-route-planner/internal/platform/obs"
)

// Plan a visiting route over sites using the nearest-neighbor tour builder.
//
// Stops carry the leg distance from the previous stop. The return leg to the
// first stop is always measured; it is added to TotalDistance only when
// returnToStart is set.
func PlanRoute(ctx context.Context, sites []domain.Site, returnToStart bool) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "route.plan")(&err)

	tour, err := BuildTour(sites)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	stops := make([]domain.RouteStop, 0, len(tour))
	for pos, idx := range tour {
		leg := 0.0
		if pos > 0 {
			leg = Distance(sites[tour[pos-1]].Position, sites[idx].Position)
		}
		stops = append(stops, domain.RouteStop{
			Position:    pos + 1,
			SiteIndex:   idx,
			Label:       sites[idx].Label,
			LegDistance: leg,
		})
	}

	total, err := TotalDistance(tour, sites)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	back, err := ClosingDistance(tour, sites)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	// Optionally includes return leg to the first site in the total.
	if returnToStart {
		total += back
	}

	return &domain.RoutePlan{
		Tour:              tour,
		Stops:             stops,
		ReturnToStart:     returnToStart,
		TotalDistance:     total,
		ReturnLegDistance: back,
	}, nil
}
