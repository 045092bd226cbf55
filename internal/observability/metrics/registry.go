// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Business metrics track summarization operations
var (
	// SummariesTotal counts summarization runs by selection mode and outcome
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_total",
			Help: "Total number of summarization runs",
		},
		[]string{"mode", "status"},
	)

	// SummarizeDuration measures end-to-end time for one summarization run
	SummarizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarize_duration_seconds",
			Help:    "Time taken to summarize a document",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// SummaryAchievedRatio observes the realized size fraction of summaries
	SummaryAchievedRatio = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summary_achieved_ratio",
			Help:    "Achieved summary ratio relative to the original document",
			Buckets: prometheus.LinearBuckets(0.05, 0.05, 20),
		},
		[]string{"mode"},
	)

	// DocumentSentences observes the size of summarized documents
	DocumentSentences = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_sentences",
			Help:    "Number of sentences in summarized documents",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
