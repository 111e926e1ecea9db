package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// External collaborator metrics
	TimelineFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timeline_fetches_total",
			Help: "Total number of timeline provider fetches",
		},
		[]string{"provider", "status"},
	)

	CompletionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_requests_total",
			Help: "Total number of text-completion provider calls",
		},
		[]string{"provider", "status"},
	)

	CompletionRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_request_duration_seconds",
			Help:    "Text-completion call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// Business metrics
	AccountsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "accounts_tracked",
			Help: "Number of accounts tracked in the current session",
		},
	)
)
