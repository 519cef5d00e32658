package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowlens_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowlens_analysis_duration_seconds",
			Help:    "Full analysis run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)

	r.BottlenecksDetected = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowlens_bottlenecks_detected_total",
			Help: "Total bottlenecks detected, by heuristic type",
		},
		[]string{"type"},
	)

	r.RedundanciesDetected = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowlens_redundancies_detected_total",
			Help: "Total redundancies detected, by type",
		},
		[]string{"type"},
	)

	r.CyclesTruncatedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flowlens_cycles_truncated_total",
			Help: "Analysis runs where cycle enumeration hit its configured cap",
		},
	)
}
