// Package metrics exposes Prometheus metrics for the rental service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "lend",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lend",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	ledgerSubmissions = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "lend",
		Name:      "ledger_submissions_total",
		Help:      "Mock ledger transactions by operation.",
	}, []string{"op"})

	searches = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "lend",
		Name:      "searches_total",
		Help:      "Smart search invocations.",
	})
)

func RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func RecordLedgerSubmission(op string) {
	ledgerSubmissions.WithLabelValues(op).Inc()
}

func RecordSearch() { searches.Inc() }

// Handler serves the registry for GET /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
