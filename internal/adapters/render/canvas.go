package render

import (
	"fmt"
	"io"
	"math"
	"site-route-planner/internal/domain"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	runeEmpty   = ' '
	runeSite    = '●'
	runeRoute   = '·'
	runeClosing = '∙'
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellRoute
	cellClosing
	cellSite
	cellLabel
)

type cell struct {
	r    rune
	kind cellKind
}

// CanvasRenderer draws a frame onto a character grid for terminal display.
// The frame's Width and Height are interpreted as columns and rows.
type CanvasRenderer struct {
	SiteStyle    lipgloss.Style
	RouteStyle   lipgloss.Style
	ClosingStyle lipgloss.Style
	LabelStyle   lipgloss.Style
}

func NewCanvasRenderer() *CanvasRenderer {
	return &CanvasRenderer{
		SiteStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		RouteStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		ClosingStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		LabelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *CanvasRenderer) Render(w io.Writer, sites []domain.Site, frame domain.Frame, plan *domain.RoutePlan) error {
	_, err := io.WriteString(w, r.Draw(sites, frame, plan))
	if err != nil {
		return fmt.Errorf("render canvas: write: %w", err)
	}
	return nil
}

// Draw returns the canvas as newline-separated rows.
func (r *CanvasRenderer) Draw(sites []domain.Site, frame domain.Frame, plan *domain.RoutePlan) string {
	cols := int(frame.Width)
	rows := int(frame.Height)
	if cols <= 0 || rows <= 0 {
		return ""
	}

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: runeEmpty}
		}
	}

	at := func(p domain.Point) (int, int) {
		x := clampInt(int(math.Round(p.X)), 0, cols-1)
		y := clampInt(int(math.Round(p.Y)), 0, rows-1)
		return x, y
	}

	if plan != nil && plan.Tour.Validate(len(frame.Points)) == nil && len(plan.Tour) > 1 {
		for i := 1; i < len(plan.Tour); i++ {
			x0, y0 := at(frame.Points[plan.Tour[i-1]])
			x1, y1 := at(frame.Points[plan.Tour[i]])
			plot(grid, x0, y0, x1, y1, cell{r: runeRoute, kind: cellRoute})
		}
		x0, y0 := at(frame.Points[plan.Tour[len(plan.Tour)-1]])
		x1, y1 := at(frame.Points[plan.Tour[0]])
		plot(grid, x0, y0, x1, y1, cell{r: runeClosing, kind: cellClosing})
	}

	for i, p := range frame.Points {
		x, y := at(p)
		grid[y][x] = cell{r: runeSite, kind: cellSite}

		if i >= len(sites) {
			continue
		}
		lx := x + 2
		for _, ch := range sites[i].Label {
			if lx >= cols {
				break
			}
			if grid[y][lx].kind == cellSite {
				break
			}
			grid[y][lx] = cell{r: ch, kind: cellLabel}
			lx++
		}
	}

	var b strings.Builder
	for y, row := range grid {
		for _, c := range row {
			b.WriteString(r.style(c))
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *CanvasRenderer) style(c cell) string {
	s := string(c.r)
	switch c.kind {
	case cellSite:
		return r.SiteStyle.Render(s)
	case cellRoute:
		return r.RouteStyle.Render(s)
	case cellClosing:
		return r.ClosingStyle.Render(s)
	case cellLabel:
		return r.LabelStyle.Render(s)
	default:
		return s
	}
}

// plot draws a Bresenham line without overwriting earlier route cells.
func plot(grid [][]cell, x0, y0, x1, y1 int, c cell) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if grid[y0][x0].kind == cellEmpty {
			grid[y0][x0] = c
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
