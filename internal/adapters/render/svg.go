package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"site-route-planner/internal/domain"
)

const (
	markerRadius = 5.0
	labelOffsetX = 10.0
	labelOffsetY = -10.0
)

type SVGOption func(*SVGRenderer)

func WithLabels(show bool) SVGOption { return func(r *SVGRenderer) { r.labels = show } }
func WithClosingEdge(show bool) SVGOption {
	return func(r *SVGRenderer) { r.closingEdge = show }
}

// SVGRenderer draws site markers, labels and the route as a standalone SVG document.
type SVGRenderer struct {
	labels      bool
	closingEdge bool
}

func NewSVGRenderer(opts ...SVGOption) *SVGRenderer {
	r := &SVGRenderer{labels: true, closingEdge: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SVGRenderer) Render(w io.Writer, sites []domain.Site, frame domain.Frame, plan *domain.RoutePlan) error {
	if len(sites) != len(frame.Points) {
		return fmt.Errorf("render svg: %d sites but %d mapped points", len(sites), len(frame.Points))
	}
	if plan != nil {
		if err := plan.Tour.Validate(len(sites)); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frame.Width, frame.Height, frame.Width, frame.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if plan != nil && len(plan.Tour) > 1 {
		buf.WriteString(`  <g class="route" stroke="red" stroke-width="1.5" fill="none">` + "\n")
		for i := 1; i < len(plan.Tour); i++ {
			writeLine(&buf, frame.Points[plan.Tour[i-1]], frame.Points[plan.Tour[i]])
		}
		buf.WriteString("  </g>\n")

		if r.closingEdge {
			last := frame.Points[plan.Tour[len(plan.Tour)-1]]
			first := frame.Points[plan.Tour[0]]
			buf.WriteString(`  <g class="closing" stroke="green" stroke-width="1.5" fill="none">` + "\n")
			writeLine(&buf, last, first)
			buf.WriteString("  </g>\n")
		}
	}

	buf.WriteString(`  <g class="sites" fill="blue">` + "\n")
	for i, p := range frame.Points {
		fmt.Fprintf(&buf, `    <circle id="site-%d" cx="%.2f" cy="%.2f" r="%.0f"/>`+"\n", i, p.X, p.Y, markerRadius)
		if r.labels && sites[i].Label != "" {
			fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="12">%s</text>`+"\n",
				p.X+labelOffsetX, p.Y+labelOffsetY, html.EscapeString(sites[i].Label))
		}
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render svg: write: %w", err)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, a, b domain.Point) {
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", a.X, a.Y, b.X, b.Y)
}
