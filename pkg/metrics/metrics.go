package metrics

import (
	"time"
)

// RecordIngest records one response batch ingestion
func (r *Registry) RecordIngest(status string, activities, stubNodes int, duration time.Duration) {
	r.IngestsTotal.WithLabelValues(status).Inc()
	r.IngestDuration.Observe(duration.Seconds())
	r.ActivitiesIngested.Add(float64(activities))
	r.StubNodesCreated.Add(float64(stubNodes))
}

// UpdateGraphSize updates the per-company graph gauges
func (r *Registry) UpdateGraphSize(company string, nodes, edges int) {
	r.GraphNodesTotal.WithLabelValues(company).Set(float64(nodes))
	r.GraphEdgesTotal.WithLabelValues(company).Set(float64(edges))
}

// RecordAnalysis records one full analysis run
func (r *Registry) RecordAnalysis(status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
}

// RecordBottleneck counts one detected bottleneck by heuristic type
func (r *Registry) RecordBottleneck(bottleneckType string) {
	r.BottlenecksDetected.WithLabelValues(bottleneckType).Inc()
}

// RecordRedundancy counts one detected redundancy by type
func (r *Registry) RecordRedundancy(redundancyType string) {
	r.RedundanciesDetected.WithLabelValues(redundancyType).Inc()
}

// RecordCyclesTruncated counts an analysis run whose cycle enumeration was
// cut short by the configured cap
func (r *Registry) RecordCyclesTruncated() {
	r.CyclesTruncatedTotal.Inc()
}
