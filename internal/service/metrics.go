package service

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	cache       *prometheus.CounterVec
}

// NewMetrics registers the service collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosteam_evaluations_total",
				Help: "State evaluations by endpoint, input pair and resulting region.",
			},
			[]string{"endpoint", "pair", "region"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gosteam_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
			[]string{"route", "code"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosteam_cache_lookups_total",
				Help: "Response cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.evaluations, m.latency, m.cache)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
