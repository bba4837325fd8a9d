package services

import (
	"fmt"
	"site-route-planner/internal/domain"
)

// TotalDistance sums the distance between consecutive stops of tour.
// The closing edge from the last stop back to the first is not included;
// see ClosingDistance.
func TotalDistance(tour domain.Tour, sites []domain.Site) (float64, error) {
	if err := tour.Validate(len(sites)); err != nil {
		return 0, fmt.Errorf("total distance: %w", err)
	}

	total := 0.0
	for i := 1; i < len(tour); i++ {
		total += Distance(sites[tour[i-1]].Position, sites[tour[i]].Position)
	}
	return total, nil
}

// ClosingDistance returns the length of the edge from the tour's last stop
// back to its first. It is zero for tours with fewer than two stops.
func ClosingDistance(tour domain.Tour, sites []domain.Site) (float64, error) {
	if err := tour.Validate(len(sites)); err != nil {
		return 0, fmt.Errorf("closing distance: %w", err)
	}
	if len(tour) < 2 {
		return 0, nil
	}
	return Distance(sites[tour[len(tour)-1]].Position, sites[tour[0]].Position), nil
}
