// Package metrics defines Prometheus metrics for graphbench workers.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_graph_nodes",
			Help: "Indexed nodes in the current CSR",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_graph_edges",
			Help: "Stored edge slots in the current CSR",
		},
	)

	PendingEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphbench_pending_edges",
			Help: "Edges loaded but not yet finalized",
		},
	)

	BuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphbench_build_duration_seconds",
			Help:    "CSR build duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	AlgorithmDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_algorithm_duration_seconds",
			Help:    "Graph algorithm duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"algorithm"},
	)

	TaskFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_task_failures_total",
			Help: "Concurrent tasks that failed and were skipped",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		WSConnections,
		NodeCount, EdgeCount, PendingEdges,
		BuildDuration, AlgorithmDuration, TaskFailures,
	)
}
