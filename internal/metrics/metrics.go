package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for BackendRequestsTotal besides the transport error types
const (
	OutcomeOK            = "ok"
	OutcomeProviderError = "provider_error"
)

var (
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forexquote_backend_requests_total",
			Help: "Total number of quote backend calls per provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	BackendRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forexquote_backend_request_duration_seconds",
			Help:    "Quote backend call duration in seconds per provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

// ObserveBackendCall records one completed backend call
func ObserveBackendCall(provider, outcome string, startedAt time.Time) {
	BackendRequestsTotal.WithLabelValues(provider, outcome).Inc()
	BackendRequestDurationSeconds.WithLabelValues(provider).Observe(time.Since(startedAt).Seconds())
}
