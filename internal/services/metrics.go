package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

// Outcome label values.
const (
	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeError    = "provider_error"
	outcomeTimeout  = "provider_timeout"
	outcomeEmptyOut = "empty"
	outcomeInternal = "internal_error"
)

var (
	// generationReqs counts gateway calls by kind and outcome.
	generationReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total number of generation requests by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// providerLat records provider call duration in seconds. Validation
	// failures never reach the provider and are not observed.
	providerLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_provider_duration_seconds",
			Help:    "Duration of text-generation provider calls in seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 45, 60},
		},
		[]string{"kind", "tier"},
	)

	// auditFailures counts audit rows that could not be written.
	auditFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "generation_audit_failures_total",
			Help: "Audit log writes that failed.",
		},
	)
)

func init() {
	prometheus.MustRegister(generationReqs, providerLat, auditFailures)
}

func countOutcome(kind domain.Kind, outcome string) {
	generationReqs.WithLabelValues(string(kind), outcome).Inc()
}
