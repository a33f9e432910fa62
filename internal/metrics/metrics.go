package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Hubgate
type MetricsRegistry struct {
	// HTTP Metrics (hubgate's own surface)
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Upstream Metrics (calls to the HCKonnect API)
	UpstreamRequestsTotal   prometheus.CounterVec
	UpstreamRequestDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	FeedBuildsTotal      prometheus.Counter
	FeedBuildDuration    prometheus.Histogram
	SessionsActive       prometheus.Gauge
	UpstreamLogoutsTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubgate_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hubgate_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hubgate_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		UpstreamRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubgate_upstream_requests_total",
				Help: "Total requests issued to the HCKonnect API by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		UpstreamRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hubgate_upstream_request_duration_seconds",
				Help:    "Upstream request latency distribution in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubgate_cache_hits_total",
				Help: "Cache hits by cache key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubgate_cache_misses_total",
				Help: "Cache misses by cache key prefix",
			},
			[]string{"prefix"},
		),

		FeedBuildsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "hubgate_feed_builds_total",
				Help: "Total aggregated feed builds",
			},
		),
		FeedBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hubgate_feed_build_duration_seconds",
				Help:    "Time spent fanning out and merging the aggregated feed",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "hubgate_sessions_active",
				Help: "Number of live sessions",
			},
		),
		UpstreamLogoutsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "hubgate_upstream_logouts_total",
				Help: "Sessions invalidated because the upstream returned 401",
			},
		),
	}
}
