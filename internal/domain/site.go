package domain

// Represents a single drop-off point the planner has to visit.
// A Site is immutable once created; its identity is its index in the
// owning Session, not its label (labels need not be unique).
type Site struct {
	Label    string
	Position Point
}

func NewSite(label string, x, y float64) Site {
	return Site{
		Label:    label,
		Position: Point{X: x, Y: y},
	}
}
