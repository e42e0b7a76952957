// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationDuration tracks end-to-end generation duration including
	// retries.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Generation duration in seconds, retries included",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"surface", "provider", "status"},
	)

	// GenerationsTotal tracks generation requests by outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generations_total",
			Help: "Total generation requests",
		},
		[]string{"surface", "provider", "status"},
	)

	// GenerationRetriesTotal tracks scheduled backend retries.
	GenerationRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_retries_total",
			Help: "Total backend retries scheduled",
		},
		[]string{"provider"},
	)

	// GenerationFallbacksTotal tracks empty backend results substituted
	// with the fixed fallback string.
	GenerationFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_fallbacks_total",
			Help: "Total empty results replaced by the fallback string",
		},
		[]string{"surface"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records metrics for one generation request.
func RecordGeneration(surface, provider, status string, duration float64) {
	GenerationDuration.WithLabelValues(surface, provider, status).Observe(duration)
	GenerationsTotal.WithLabelValues(surface, provider, status).Inc()
}
