package domain

// Immutable position in the planner's 2D coordinate space.
type Point struct {
	X float64
	Y float64
}
