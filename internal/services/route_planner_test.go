package services

import (
	"context"
	"site-route-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRoute(t *testing.T) {
	sites := sitesOf(
		[3]any{0.0, 0.0, "A"},
		[3]any{0.0, 4.0, "B"},
		[3]any{3.0, 0.0, "C"},
	)

	plan, err := PlanRoute(context.Background(), sites, false)
	require.NoError(t, err)

	require.Len(t, plan.Stops, 3)
	assert.Equal(t, domain.Tour{0, 2, 1}, plan.Tour)
	assert.Equal(t, domain.RouteStop{Position: 1, SiteIndex: 0, Label: "A"}, plan.Stops[0])
	assert.Equal(t, domain.RouteStop{Position: 2, SiteIndex: 2, Label: "C", LegDistance: 3}, plan.Stops[1])
	assert.Equal(t, domain.RouteStop{Position: 3, SiteIndex: 1, Label: "B", LegDistance: 5}, plan.Stops[2])

	assert.Equal(t, 8.0, plan.TotalDistance)
	assert.Equal(t, 4.0, plan.ReturnLegDistance)
	assert.False(t, plan.ReturnToStart)
}

func TestPlanRouteReturnToStart(t *testing.T) {
	sites := sitesOf(
		[3]any{0.0, 0.0, "A"},
		[3]any{0.0, 4.0, "B"},
		[3]any{3.0, 0.0, "C"},
	)

	plan, err := PlanRoute(context.Background(), sites, true)
	require.NoError(t, err)
	assert.Equal(t, 12.0, plan.TotalDistance)
	assert.True(t, plan.ReturnToStart)
}

func TestPlanRouteNoSites(t *testing.T) {
	_, err := PlanRoute(context.Background(), nil, false)
	require.ErrorIs(t, err, ErrNoSites)
}
