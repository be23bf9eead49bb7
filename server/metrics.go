package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the HTTP service.
// Each Component owns its registry so tests can construct components
// without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	translationsTotal *prometheus.CounterVec
	droppedRelations  prometheus.Counter
}

// NewMetrics creates and registers the service instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casebridge_http_requests_total",
			Help: "HTTP requests by handler, method, and status code.",
		}, []string{"handler", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casebridge_http_request_duration_seconds",
			Help:    "HTTP request latency by handler.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		translationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casebridge_translations_total",
			Help: "Completed translations by target format and outcome.",
		}, []string{"format", "outcome"}),
		droppedRelations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "casebridge_dropped_relations_total",
			Help: "Embedded-format relations dropped because their origin is not a translated competency.",
		}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.translationsTotal, m.droppedRelations)
	return m
}

// Handler returns the /metrics scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
