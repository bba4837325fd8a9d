package render

import (
	"bytes"
	"site-route-planner/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasRendererDraw(t *testing.T) {
	sites := []domain.Site{
		domain.NewSite("A", 0, 0),
		domain.NewSite("B", 10, 0),
		domain.NewSite("C", 10, 10),
	}
	frame := domain.Frame{
		Width:   30,
		Height:  10,
		Padding: 1,
		Points:  []domain.Point{{X: 1, Y: 1}, {X: 20, Y: 1}, {X: 20, Y: 8}},
	}
	plan := &domain.RoutePlan{Tour: domain.Tour{0, 1, 2}}

	out := NewCanvasRenderer().Draw(sites, frame, plan)

	assert.Len(t, strings.Split(out, "\n"), 10)
	assert.Equal(t, 3, strings.Count(out, string(runeSite)))
	assert.Contains(t, out, string(runeRoute))
	assert.Contains(t, out, string(runeClosing))
}

func TestCanvasRendererWithoutPlanDrawsOnlySites(t *testing.T) {
	sites := []domain.Site{domain.NewSite("", 0, 0), domain.NewSite("", 1, 1)}
	frame := domain.Frame{Width: 12, Height: 6, Points: []domain.Point{{X: 2, Y: 2}, {X: 9, Y: 4}}}

	var buf bytes.Buffer
	require.NoError(t, NewCanvasRenderer().Render(&buf, sites, frame, nil))

	assert.Equal(t, 2, strings.Count(buf.String(), string(runeSite)))
	assert.NotContains(t, buf.String(), string(runeRoute))
}

func TestCanvasRendererEmptyFrame(t *testing.T) {
	assert.Empty(t, NewCanvasRenderer().Draw(nil, domain.Frame{}, nil))
}
