package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowlens_ingests_total",
			Help: "Total number of response batches ingested",
		},
		[]string{"status"},
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowlens_ingest_duration_seconds",
			Help:    "Response batch ingestion duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.ActivitiesIngested = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flowlens_activities_ingested_total",
			Help: "Total number of employee activities merged into graphs",
		},
	)

	r.StubNodesCreated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flowlens_stub_nodes_created_total",
			Help: "Total number of placeholder nodes created for dangling dependency ids",
		},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flowlens_graph_nodes",
			Help: "Current node count per company graph",
		},
		[]string{"company"},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flowlens_graph_edges",
			Help: "Current edge count per company graph",
		},
		[]string{"company"},
	)
}
