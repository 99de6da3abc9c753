package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	registerOnce        sync.Once
)

// RegisterMetrics initializes the collectors on the default registry. Safe to
// call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blogify",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the blog API.",
		}, []string{"method", "path", "status"})

		httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blogify",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests processed by the blog API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})
	})
}

func observeRequest(method, path string, status int, elapsed time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
