// Package metrics defines Prometheus metrics for caseboard.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "caseboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caseboard_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caseboard_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "caseboard_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	EntityCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "caseboard_entities_total",
			Help: "Total entity count, refreshed on stats collection",
		},
	)

	RelationshipCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "caseboard_relationships_total",
			Help: "Total relationship count, refreshed on stats collection",
		},
	)

	ExploreDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "caseboard_explore_depth",
			Help:    "Requested exploration depth after clamping",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	ExploreDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "caseboard_explore_duration_seconds",
			Help:    "Graph exploration duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		WSConnections,
		EntityCount, RelationshipCount,
		ExploreDepth, ExploreDuration,
	)
}
