package services

import "site-route-planner/internal/domain"

// MapToDrawing scales site positions into a width x height region inset by
// padding on every side. Each axis is scaled independently so the extreme
// sites touch the padded edges.
//
// An axis where every site shares the same value maps to the midline of the
// padded extent. A region smaller than twice the padding collapses that axis
// onto the padding line.
func MapToDrawing(sites []domain.Site, width, height, padding float64) domain.Frame {
	frame := domain.Frame{
		Width:   width,
		Height:  height,
		Padding: padding,
		Points:  make([]domain.Point, len(sites)),
	}
	if len(sites) == 0 {
		return frame
	}

	minX, maxX := sites[0].Position.X, sites[0].Position.X
	minY, maxY := sites[0].Position.Y, sites[0].Position.Y
	for _, s := range sites[1:] {
		minX = min(minX, s.Position.X)
		maxX = max(maxX, s.Position.X)
		minY = min(minY, s.Position.Y)
		maxY = max(maxY, s.Position.Y)
	}

	spanX := max(width-2*padding, 0)
	spanY := max(height-2*padding, 0)

	for i, s := range sites {
		frame.Points[i] = domain.Point{
			X: scaleAxis(s.Position.X, minX, maxX, padding, spanX),
			Y: scaleAxis(s.Position.Y, minY, maxY, padding, spanY),
		}
	}
	return frame
}

// scaleAxis halves both operands before subtracting so that spans near
// the float64 limit do not overflow to Inf.
func scaleAxis(v, lo, hi, padding, span float64) float64 {
	if hi == lo {
		return padding + span/2
	}
	ratio := (v/2 - lo/2) / (hi/2 - lo/2)
	return padding + min(max(ratio, 0), 1)*span
}
