package services

import (
	"math"
	"site-route-planner/internal/domain"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b domain.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
