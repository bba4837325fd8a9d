package services

import (
	"errors"
	"math"
	"site-route-planner/internal/domain"
)

// ErrNoSites is returned when a tour is requested over an empty site collection.
var ErrNoSites = errors.New("no sites available")

// Build a visiting order using a greedy nearest-neighbor algorithm.
//
// The tour starts at site 0 and repeatedly moves to the closest unvisited
// site. Sites are scanned in index order with a strict comparison, so ties
// go to the lowest index and the result is deterministic.
// It does not attempt global tour optimization.
func BuildTour(sites []domain.Site) (domain.Tour, error) {
	n := len(sites)
	if n == 0 {
		return nil, ErrNoSites
	}

	visited := make([]bool, n)
	tour := make(domain.Tour, 0, n)

	current := 0
	visited[current] = true
	tour = append(tour, current)

	for step := 1; step < n; step++ {
		next := -1
		shortest := math.MaxFloat64

		for i := range sites {
			if visited[i] {
				continue
			}
			d := Distance(sites[current].Position, sites[i].Position)
			if d < shortest {
				shortest = d
				next = i
			}
		}

		// Only reachable with non-finite coordinates, which input parsing rejects.
		if next == -1 {
			for i := range visited {
				if !visited[i] {
					next = i
					break
				}
			}
		}

		visited[next] = true
		tour = append(tour, next)
		current = next
	}

	return tour, nil
}
