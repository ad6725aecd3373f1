// Package metrics provides Prometheus collectors for the node client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alephzap",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of full-node REST operations.",
	}, []string{"operation", "network", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alephzap",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of full-node REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for REST calls to the full node.
type NodeClient struct {
	network string
}

// NewNodeClient constructs a metrics collector for node calls.
func NewNodeClient(network string) *NodeClient {
	if network == "" {
		network = "unknown"
	}
	return &NodeClient{network: network}
}

// Observe records a single node call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
