// Package tui is the interactive terminal front end: a site entry form,
// a route output log and a canvas that draws the sites and the route.
package tui

import (
	"context"
	"errors"
	"fmt"
	"site-route-planner/internal/adapters/render"
	"site-route-planner/internal/domain"
	"site-route-planner/internal/services"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldLabel = iota
	fieldX
	fieldY
	fieldCount
)

const (
	msgInvalidInput = "Invalid input. Please enter numeric values for coordinates."
	msgNoSites      = "No locations added."

	canvasPadding = 2
	minCanvasCols = 20
	minCanvasRows = 8
	formWidth     = 44
)

var fieldNames = [fieldCount]string{"Address:", "X Coordinate:", "Y Coordinate:"}

// Model is the bubbletea model for the planner.
type Model struct {
	ctx      context.Context
	planner  *services.Planner
	renderer *render.CanvasRenderer

	inputs [fieldCount]string
	focus  int

	output []string
	status string
	failed bool

	canvasCols int
	canvasRows int
}

func New(ctx context.Context, planner *services.Planner) Model {
	return Model{
		ctx:        ctx,
		planner:    planner,
		renderer:   render.NewCanvasRenderer(),
		canvasCols: 60,
		canvasRows: 20,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % fieldCount
		case tea.KeyShiftTab, tea.KeyUp:
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		case tea.KeyEnter:
			m = m.addSite()
		case tea.KeyCtrlR:
			m = m.calculate()
		case tea.KeyBackspace:
			r := []rune(m.inputs[m.focus])
			if len(r) > 0 {
				m.inputs[m.focus] = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			m.inputs[m.focus] += " "
		case tea.KeyRunes:
			m.inputs[m.focus] += string(msg.Runes)
		}
	case tea.WindowSizeMsg:
		m.canvasCols = max(msg.Width-formWidth-8, minCanvasCols)
		m.canvasRows = max(msg.Height-6, minCanvasRows)
	}
	return m, nil
}

// addSite mirrors the "Add Location" button: validate, append, log, clear the form.
func (m Model) addSite() Model {
	_, site, err := m.planner.AddSite(m.ctx, m.inputs[fieldLabel], m.inputs[fieldX], m.inputs[fieldY])
	if err != nil {
		m.failed = true
		m.status = msgInvalidInput
		if !errors.Is(err, domain.ErrInvalidCoordinate) {
			m.status = err.Error()
		}
		return m
	}

	m.output = append(m.output, fmt.Sprintf("Added: %s (%s, %s)",
		site.Label, formatFloat(site.Position.X), formatFloat(site.Position.Y)))
	m.inputs = [fieldCount]string{}
	m.focus = fieldLabel
	m.failed = false
	m.status = ""
	return m
}

// calculate mirrors the "Calculate Route" button. Input fields are kept.
func (m Model) calculate() Model {
	plan, err := m.planner.ComputeRoute(m.ctx)
	if err != nil {
		m.failed = true
		m.status = err.Error()
		if errors.Is(err, services.ErrNoSites) {
			m.status = msgNoSites
		}
		return m
	}

	m.output = FormatPlan(plan)
	m.failed = false
	m.status = ""
	return m
}

// FormatPlan renders a plan as the numbered visiting order and its totals.
func FormatPlan(plan *domain.RoutePlan) []string {
	lines := []string{"Order of locations to visit:"}
	for _, s := range plan.Stops {
		lines = append(lines, fmt.Sprintf("%d. %s", s.Position, s.Label))
	}
	lines = append(lines, "Total distance: "+formatFloat(plan.TotalDistance))
	if !plan.ReturnToStart && len(plan.Stops) > 1 {
		lines = append(lines, "Return leg (drawn, not counted): "+formatFloat(plan.ReturnLegDistance))
	}
	return lines
}

func (m Model) View() string {
	form := m.viewForm()
	canvas := m.viewCanvas()

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, canvas)
	title := styleTitle.Width(lipgloss.Width(body)).Render("Medical Equipment Allocation")
	help := styleHelp.Render("tab: next field  enter: add location  ctrl+r: calculate route  esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(styleFocused.Render("Add Location"))
	b.WriteString("\n")
	for i := 0; i < fieldCount; i++ {
		value := m.inputs[i]
		style := styleField
		if i == m.focus {
			value += "█"
			style = styleFocused
		}
		b.WriteString(styleLabel.Render(fieldNames[i]))
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := styleSuccess
		if m.failed {
			style = styleError
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(styleFocused.Render("Route Calculation"))
	b.WriteString("\n")

	// Keep the newest lines when the log outgrows the panel.
	lines := m.output
	if limit := max(m.canvasRows-fieldCount-4, 3); len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	b.WriteString(strings.Join(lines, "\n"))

	return stylePanel.Width(formWidth).Render(b.String())
}

func (m Model) viewCanvas() string {
	sites, plan := m.planner.Snapshot()
	frame := services.MapToDrawing(sites, float64(m.canvasCols), float64(m.canvasRows), canvasPadding)
	return stylePanel.Render(m.renderer.Draw(sites, frame, plan))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
