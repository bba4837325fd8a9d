package services

import (
	"context"
	"errors"
	"fmt"
	"site-route-planner/internal/domain"
	"site-route-planner/internal/platform/metrics"
	"site-route-planner/internal/platform/obs"
	"sync"
	"time"
)

// Planner is the control layer shared by the front ends. It owns the
// Session and applies its rules: adding a site drops the current route,
// and computing a route is a separate explicit action.
//
// Planner serializes access to the session, so it is safe for concurrent use.
type Planner struct {
	mu            sync.Mutex
	session       *domain.Session
	plan          *domain.RoutePlan
	returnToStart bool
	metrics       *metrics.Metrics
}

func NewPlanner(returnToStart bool, m *metrics.Metrics) *Planner {
	if m == nil {
		m = metrics.New()
	}
	return &Planner{
		session:       domain.NewSession(),
		returnToStart: returnToStart,
		metrics:       m,
	}
}

// AddSite validates raw input and appends a site, returning its index.
// On error nothing changes.
func (p *Planner) AddSite(ctx context.Context, label, xText, yText string) (int, domain.Site, error) {
	label, x, y, err := domain.ParseSiteInput(label, xText, yText)
	if err != nil {
		return 0, domain.Site{}, fmt.Errorf("add site: %w", err)
	}
	idx, site := p.AddSiteAt(ctx, label, x, y)
	return idx, site, nil
}

// AddSiteAt appends a site from already-validated coordinates.
func (p *Planner) AddSiteAt(ctx context.Context, label string, x, y float64) (int, domain.Site) {
	p.mu.Lock()
	defer p.mu.Unlock()

	site := p.session.AddSite(label, x, y)
	p.plan = nil
	p.metrics.SitesAdded.Inc()

	idx := p.session.Len() - 1
	obs.FromContext(ctx).Debug("site added", "index", idx, "label", site.Label, "x", x, "y", y)
	return idx, site
}

// ComputeRoute builds a fresh route over the current sites and records it.
func (p *Planner) ComputeRoute(ctx context.Context) (*domain.RoutePlan, error) {
	return p.ComputeRouteWith(ctx, p.returnToStart)
}

// ComputeRouteWith is ComputeRoute with an explicit return-leg setting.
func (p *Planner) ComputeRouteWith(ctx context.Context, returnToStart bool) (*domain.RoutePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	plan, err := PlanRoute(ctx, p.session.Sites(), returnToStart)
	if err != nil {
		reason := "internal"
		if errors.Is(err, ErrNoSites) {
			reason = "no_sites"
		}
		p.metrics.RouteFailures.WithLabelValues(reason).Inc()
		return nil, fmt.Errorf("compute route: %w", err)
	}
	p.metrics.RouteDuration.Observe(time.Since(start).Seconds())

	if err := p.session.SetTour(plan.Tour); err != nil {
		return nil, fmt.Errorf("compute route: %w", err)
	}
	p.plan = plan
	p.metrics.RoutesComputed.Inc()

	obs.FromContext(ctx).Info("route computed", "sites", len(plan.Stops), "total", plan.TotalDistance)
	return plan, nil
}

// Route returns the last computed plan, or false when it was invalidated
// or never computed.
func (p *Planner) Route() (*domain.RoutePlan, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.session.Tour(); !ok || p.plan == nil {
		return nil, false
	}
	return p.plan, true
}

// Snapshot returns the sites together with the route computed over exactly
// those sites, or a nil plan.
func (p *Planner) Snapshot() ([]domain.Site, *domain.RoutePlan) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.session.Tour(); !ok {
		return p.session.Sites(), nil
	}
	return p.session.Sites(), p.plan
}

func (p *Planner) Sites() []domain.Site {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.Sites()
}

// Frame maps the current sites into a width x height drawing region.
func (p *Planner) Frame(width, height, padding float64) domain.Frame {
	return MapToDrawing(p.Sites(), width, height, padding)
}
