package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTour is returned when a tour is not a permutation of the site indices.
var ErrInvalidTour = errors.New("invalid tour")

// Tour is a visiting order over site indices.
// For N sites a valid Tour is a permutation of {0 … N-1}.
type Tour []int

// Validate reports whether t visits each of n sites exactly once.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return fmt.Errorf("validate tour: %w: length %d, want %d", ErrInvalidTour, len(t), n)
	}

	seen := make([]bool, n)
	for pos, idx := range t {
		if idx < 0 || idx >= n {
			return fmt.Errorf("validate tour: %w: index %d at position %d out of range", ErrInvalidTour, idx, pos)
		}
		if seen[idx] {
			return fmt.Errorf("validate tour: %w: index %d visited twice", ErrInvalidTour, idx)
		}
		seen[idx] = true
	}

	return nil
}

// Represents a single stop in a planned route.
// Position is 1-based visiting order; LegDistance is measured from the
// previous stop and is zero for the first one.
type RouteStop struct {
	Position    int
	SiteIndex   int
	Label       string
	LegDistance float64
}

// Represents the planned visiting order over a session's sites.
// A RoutePlan is the output of the tour builder plus distance summation.
// TotalDistance covers consecutive stops and includes ReturnLegDistance
// only when ReturnToStart is set; the return leg is always reported so the
// drawn closing edge can be reconciled with the total.
type RoutePlan struct {
	Tour              Tour
	Stops             []RouteStop
	ReturnToStart     bool
	TotalDistance     float64
	ReturnLegDistance float64
}
