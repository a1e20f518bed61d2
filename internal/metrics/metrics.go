// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RPCRequests counts RPCs by procedure and Connect code ("ok" on success).
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kinship_rpc_requests_total",
		Help: "Total RPCs by procedure and result code",
	}, []string{"procedure", "code"})

	// RPCDuration tracks RPC latency.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kinship_rpc_duration_seconds",
		Help:    "RPC duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"procedure"})

	// RelationOutcomes counts relationship mutations by operation and result.
	// Result is "accepted", a validation reason, or "error".
	RelationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kinship_relation_outcomes_total",
		Help: "Relationship mutations by operation and outcome",
	}, []string{"operation", "result"})

	// LinkedChildren tracks how many children a batch link call accepted.
	LinkedChildren = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kinship_linked_children",
		Help:    "Children accepted per parent-child batch",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
	})

	// LayoutNodes tracks graph sizes handed to the layout oracle.
	LayoutNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kinship_layout_nodes",
		Help:    "Nodes per laid-out family tree",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
