package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcwire",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mcwire",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	graphDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcwire",
			Subsystem: "codec",
			Name:      "graph_decodes_total",
			Help:      "Command graph decode attempts.",
		},
		[]string{"node", "outcome"},
	)
	graphEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcwire",
			Subsystem: "codec",
			Name:      "graph_encodes_total",
			Help:      "Command graph encode attempts.",
		},
		[]string{"node", "outcome"},
	)
	graphNodes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mcwire",
			Subsystem: "codec",
			Name:      "graph_nodes",
			Help:      "Nodes per successfully decoded graph.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"node"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, graphDecodes, graphEncodes, graphNodes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordGraphDecode counts one decode attempt; outcome is "ok" or the short
// name of the error kind.
func RecordGraphDecode(node, outcome string, nodes int) {
	RegisterMetrics()
	graphDecodes.WithLabelValues(node, outcome).Inc()
	if outcome == "ok" {
		graphNodes.WithLabelValues(node).Observe(float64(nodes))
	}
}

func RecordGraphEncode(node, outcome string) {
	RegisterMetrics()
	graphEncodes.WithLabelValues(node, outcome).Inc()
}
