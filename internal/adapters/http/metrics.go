package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the per-handler prometheus collectors. Each handler owns its
// registry so multiple hierarchies (or tests) can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineage_lookups_total",
				Help: "Resolution lookups by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lineage_lookup_duration_seconds",
				Help:    "Resolution lookup latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.lookups, m.duration)
	return m
}

func (m *metrics) observe(kind, outcome string, elapsed time.Duration) {
	m.lookups.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
