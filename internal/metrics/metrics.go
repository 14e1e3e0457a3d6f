// Package metrics exposes travel log figures and mutation outcomes as
// Prometheus metrics on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/colonyops/passport/internal/core/travel"
)

// Outcomes reported for a mutation.
const (
	OutcomeApplied   = "applied"
	OutcomeUnchanged = "unchanged"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Metrics tracks mutations applied to the travel log.
type Metrics struct {
	registry *prometheus.Registry

	Mutations        *prometheus.CounterVec
	MutationDuration *prometheus.HistogramVec
}

// New registers the mutation metrics and gauges derived from stats. stats is
// called on every scrape.
func New(stats func() travel.Stats) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passport_mutations_total",
			Help: "Travel log mutations by operation and outcome",
		}, []string{"op", "outcome"}),
		MutationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "passport_mutation_duration_seconds",
			Help:    "Duration of travel log mutations including persistence",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"op"}),
	}

	gauge := func(name, help string, value func(travel.Stats) int) {
		factory.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			return float64(value(stats()))
		})
	}
	gauge("passport_visited_countries", "Countries on the visited list",
		func(s travel.Stats) int { return s.VisitedCount })
	gauge("passport_continents_visited", "Distinct continents visited",
		func(s travel.Stats) int { return s.ContinentsVisited })
	gauge("passport_cities", "Cities across all visited countries",
		func(s travel.Stats) int { return s.TotalCities })
	gauge("passport_wishlist", "Destinations on the wishlist",
		func(s travel.Stats) int { return s.WishlistCount })

	return m
}

// ObserveMutation records one mutation. Call with time.Now() at the start of
// the operation.
func (m *Metrics) ObserveMutation(op, outcome string, start time.Time) {
	m.Mutations.WithLabelValues(op, outcome).Inc()
	m.MutationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
