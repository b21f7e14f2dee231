// Package metrics defines the Prometheus collectors for the task board
// service. Collectors are registered with the default registry at init
// via promauto and exposed by the /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// BulkReplaceDuration tracks how long the delete-then-insert task
	// replacement transaction takes end to end.
	BulkReplaceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "task_bulk_replace_duration_seconds",
			Help:    "Duration of bulk task replacement transactions in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"status"}, // status: success, failed
	)

	// AuthFailureCount counts requests rejected by the authentication gate.
	AuthFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failure_count",
			Help: "Total number of requests rejected by the JWT gate",
		},
		[]string{"reason"}, // reason: missing, invalid, expired
	)

	// TokenIssuedCount counts successfully issued JWTs.
	TokenIssuedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_issued_count",
			Help: "Total number of JWTs issued",
		},
	)
)

// ObserveHTTPRequest records one completed HTTP request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveBulkReplace records one bulk task replacement attempt.
func ObserveBulkReplace(status string, duration time.Duration) {
	BulkReplaceDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordAuthFailure records one rejected request at the authentication gate.
func RecordAuthFailure(reason string) {
	AuthFailureCount.WithLabelValues(reason).Inc()
}

// RecordTokenIssued records one successfully issued JWT.
func RecordTokenIssued() {
	TokenIssuedCount.Inc()
}
