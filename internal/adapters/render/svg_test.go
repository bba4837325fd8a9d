package render

import (
	"bytes"
	"site-route-planner/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() ([]domain.Site, domain.Frame, *domain.RoutePlan) {
	sites := []domain.Site{
		domain.NewSite("A", 0, 0),
		domain.NewSite("B <east>", 10, 0),
		domain.NewSite("C", 10, 10),
	}
	frame := domain.Frame{
		Width:   200,
		Height:  200,
		Padding: 50,
		Points:  []domain.Point{{X: 50, Y: 50}, {X: 150, Y: 50}, {X: 150, Y: 150}},
	}
	plan := &domain.RoutePlan{Tour: domain.Tour{0, 1, 2}}
	return sites, frame, plan
}

func TestSVGRendererDrawsRouteAndClosingEdge(t *testing.T) {
	sites, frame, plan := testScene()

	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer().Render(&buf, sites, frame, plan))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Equal(t, 3, strings.Count(out, "<circle "))
	assert.Equal(t, 3, strings.Count(out, "<line "))
	assert.Contains(t, out, `<line x1="150.00" y1="150.00" x2="50.00" y2="50.00"/>`)
	assert.Contains(t, out, "B &lt;east&gt;")
}

func TestSVGRendererWithoutPlan(t *testing.T) {
	sites, frame, _ := testScene()

	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(WithLabels(false)).Render(&buf, sites, frame, nil))

	assert.Equal(t, 3, strings.Count(buf.String(), "<circle "))
	assert.NotContains(t, buf.String(), "<line ")
	assert.NotContains(t, buf.String(), "<text ")
}

func TestSVGRendererWithoutClosingEdge(t *testing.T) {
	sites, frame, plan := testScene()

	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(WithClosingEdge(false)).Render(&buf, sites, frame, plan))
	assert.Equal(t, 2, strings.Count(buf.String(), "<line "))
}

func TestSVGRendererRejectsMismatchedInput(t *testing.T) {
	sites, frame, plan := testScene()

	err := NewSVGRenderer().Render(&bytes.Buffer{}, sites[:2], frame, plan)
	require.Error(t, err)

	err = NewSVGRenderer().Render(&bytes.Buffer{}, sites, frame, &domain.RoutePlan{Tour: domain.Tour{0, 1}})
	require.ErrorIs(t, err, domain.ErrInvalidTour)
}
