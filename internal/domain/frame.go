package domain

// Frame is the per-render mapping of site positions into a padded drawing
// region. Points[i] is the drawing position of site i.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
	Points  []Point
}
