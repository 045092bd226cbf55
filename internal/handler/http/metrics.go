package http

import (
	"net/http"
	"strconv"
	"time"

	"tldr/internal/handler/http/responsewriter"
	"tldr/internal/observability/metrics"
)

// Metrics returns middleware that records Prometheus metrics for each
// request: total count, duration and response size, labeled by method,
// path and status. The API's route set is small and fixed, so the raw
// path is a safe label value.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		status := strconv.Itoa(wrapped.StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path, status).
			Observe(time.Since(start).Seconds())
		metrics.HTTPResponseSize.WithLabelValues(r.Method, path).
			Observe(float64(wrapped.BytesWritten()))
	})
}
