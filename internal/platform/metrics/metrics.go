// Package metrics holds the planner's prometheus instruments.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	SitesAdded     prometheus.Counter
	RoutesComputed prometheus.Counter
	RouteFailures  *prometheus.CounterVec
	RouteDuration  prometheus.Histogram
}

// New registers the planner instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		SitesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_sites_added_total",
			Help: "Number of sites appended to the session.",
		}),
		RoutesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planner_routes_computed_total",
			Help: "Number of tours built successfully.",
		}),
		RouteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_route_failures_total",
			Help: "Number of route requests rejected, by reason.",
		}, []string{"reason"}),
		RouteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_route_build_seconds",
			Help:    "Time spent building a tour.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	reg.MustRegister(m.SitesAdded, m.RoutesComputed, m.RouteFailures, m.RouteDuration)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
