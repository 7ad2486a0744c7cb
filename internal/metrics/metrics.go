// Package metrics provides Prometheus metrics for the vincode server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vincode/internal/workspace"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vincode_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vincode_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Workspace store metrics
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vincode_workspace_commands_total",
			Help: "Total number of workspace commands by result",
		},
		[]string{"command", "result"},
	)

	treeNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vincode_workspace_tree_nodes",
			Help: "Number of nodes in the workspace tree",
		},
	)

	previewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vincode_preview_assembly_duration_seconds",
			Help:    "Preview assembly duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	exportBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vincode_export_bytes_total",
			Help: "Total bytes of project archives served",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCommand records the outcome of a store command.
func RecordCommand(command string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	commandsTotal.WithLabelValues(command, result).Inc()
}

// SetTreeSize sets the current number of tree nodes.
func SetTreeSize(n int) {
	treeNodes.Set(float64(n))
}

// RecordPreview records one preview assembly.
func RecordPreview(duration time.Duration) {
	previewDuration.Observe(duration.Seconds())
}

// RecordExport records the size of a served archive.
func RecordExport(bytes int64) {
	exportBytes.Add(float64(bytes))
}

// Observe is a workspace observer that counts commands and tracks the tree
// size. Pass it with workspace.WithObserver; store is read after the command
// has been applied.
func Observe(store func() *workspace.Store) func(command string, err error) {
	return func(command string, err error) {
		RecordCommand(command, err)
		if s := store(); s != nil && err == nil {
			SetTreeSize(workspace.Count(s.Snapshot().Tree))
		}
	}
}
