package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelmock",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	searchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hotelmock",
			Name:      "search_duration_seconds",
			Help:      "Availability search latency.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelmock",
			Name:      "search_cache_total",
			Help:      "Search cache lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, searchDuration, cacheHits)
	})
}

// IncHTTP increments the request counter for an endpoint/status pair.
func IncHTTP(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

// ObserveSearch records the duration of one availability search.
func ObserveSearch(d time.Duration) {
	searchDuration.Observe(d.Seconds())
}

// IncCache counts a cache lookup outcome ("hit" or "miss").
func IncCache(outcome string) {
	cacheHits.WithLabelValues(outcome).Inc()
}
