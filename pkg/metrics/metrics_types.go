package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the analysis engine
type Registry struct {
	// Ingestion Metrics
	IngestsTotal       *prometheus.CounterVec
	IngestDuration     prometheus.Histogram
	ActivitiesIngested prometheus.Counter
	StubNodesCreated   prometheus.Counter
	GraphNodesTotal    *prometheus.GaugeVec
	GraphEdgesTotal    *prometheus.GaugeVec

	// Analysis Metrics
	AnalysesTotal        *prometheus.CounterVec
	AnalysisDuration     prometheus.Histogram
	BottlenecksDetected  *prometheus.CounterVec
	RedundanciesDetected *prometheus.CounterVec
	CyclesTruncatedTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// NewRegistry creates a new metrics registry with all metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initIngestMetrics()
	r.initAnalysisMetrics()
	return r
}

// Default returns the global registry instance, creating it on first use
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// PrometheusRegistry exposes the underlying registry for scrape handlers
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
