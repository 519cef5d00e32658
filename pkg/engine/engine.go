package engine

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flowlens/flowlens/pkg/algorithms"
	"github.com/flowlens/flowlens/pkg/analysis"
	"github.com/flowlens/flowlens/pkg/config"
	"github.com/flowlens/flowlens/pkg/logging"
	"github.com/flowlens/flowlens/pkg/metrics"
	"github.com/flowlens/flowlens/pkg/validation"
	"github.com/flowlens/flowlens/pkg/workflow"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmptyCompanyID  = errors.New("empty company id")
)

// Engine owns the current graph per company and enforces the write
// discipline: ingestion takes an exclusive lock on a company's graph,
// analysis runs under a shared lock over the resulting snapshot. Different
// companies are fully independent and proceed in parallel.
type Engine struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry

	mu        sync.Mutex
	companies map[string]*companyState
}

type companyState struct {
	mu    sync.RWMutex
	graph *workflow.CompanyWorkflowGraph
}

// AnalysisResult is the full in-memory output handed to the reporting
// collaborator.
type AnalysisResult struct {
	SessionID       string                        `json:"session_id"`
	CompanyID       string                        `json:"company_id"`
	GeneratedAt     time.Time                     `json:"generated_at"`
	Bottlenecks     []analysis.WorkflowBottleneck `json:"bottlenecks"`
	Redundancies    []analysis.Redundancy         `json:"redundancies"`
	Insights        *analysis.Insights            `json:"insights"`
	Graph           analysis.GraphExport          `json:"graph"`
	Visualizations  *analysis.VisualizationData   `json:"visualizations"`
	UpdateSchedule  analysis.UpdateSchedule       `json:"update_schedule"`
	CyclesTruncated bool                          `json:"cycles_truncated,omitempty"`
}

// TopBottlenecks returns up to n bottlenecks ordered by severity descending,
// ties broken by node id.
func (r *AnalysisResult) TopBottlenecks(n int) []analysis.WorkflowBottleneck {
	top := append([]analysis.WorkflowBottleneck(nil), r.Bottlenecks...)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Severity != top[j].Severity {
			return top[i].Severity > top[j].Severity
		}
		return top[i].NodeID < top[j].NodeID
	})
	if n > 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// New creates an engine. A nil logger discards output; a nil registry
// creates a private one.
func New(cfg config.Config, logger logging.Logger, reg *metrics.Registry) *Engine {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		metrics:   reg,
		companies: make(map[string]*companyState),
	}
}

func (e *Engine) company(companyID string, create bool) (*companyState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.companies[companyID]
	if !ok {
		if !create {
			return nil, ErrCompanyNotFound
		}
		state = &companyState{graph: workflow.NewCompanyWorkflowGraph(companyID)}
		e.companies[companyID] = state
	}
	return state, nil
}

// IngestResponses merges a batch of employee responses into the company's
// graph, creating the graph on first contact. Malformed records never fail
// the batch; advisory warnings are logged instead.
func (e *Engine) IngestResponses(companyID string, responses []workflow.EmployeeResponse) (workflow.IngestReport, error) {
	if companyID == "" {
		return workflow.IngestReport{}, ErrEmptyCompanyID
	}

	log := e.logger.With(logging.String("company", companyID))
	for _, resp := range responses {
		for _, warning := range validation.CheckResponse(resp) {
			log.Warn("survey response issue",
				logging.String("employee", resp.EmployeeID),
				logging.String("detail", warning))
		}
	}

	state, err := e.company(companyID, true)
	if err != nil {
		return workflow.IngestReport{}, err
	}

	start := time.Now()
	state.mu.Lock()
	report := workflow.Ingest(state.graph, responses)
	stats := state.graph.GetStatistics()
	state.mu.Unlock()

	e.metrics.RecordIngest("success", report.ActivitiesTotal, report.StubNodesCreated, time.Since(start))
	e.metrics.UpdateGraphSize(companyID, stats.NodeCount, stats.EdgeCount)

	log.Info("ingested response batch",
		logging.Int("employees", report.EmployeesSurveyed),
		logging.Int("activities", report.ActivitiesTotal),
		logging.Int("stub_nodes", report.StubNodesCreated),
		logging.Int("graph_nodes", stats.NodeCount),
		logging.Int("graph_edges", stats.EdgeCount),
		logging.Duration("elapsed", time.Since(start)))

	return report, nil
}

// Analyze runs every detector over the company's current graph snapshot and
// synthesizes the full report. Analysis is pure and deterministic: repeated
// calls without new ingestion return equivalent results (session id and
// timestamps aside).
func (e *Engine) Analyze(companyID string) (*AnalysisResult, error) {
	state, err := e.company(companyID, false)
	if err != nil {
		e.metrics.RecordAnalysis("error", 0)
		return nil, err
	}

	start := time.Now()
	state.mu.RLock()
	defer state.mu.RUnlock()
	g := state.graph

	bottlenecks := analysis.DetectBottlenecks(g)
	redundancy := analysis.DetectRedundancies(g, algorithms.CycleDetectionOptions{
		MaxCycles:      e.cfg.MaxCycles,
		MaxCycleLength: e.cfg.MaxCycleLength,
	})
	insights := analysis.Synthesize(g, bottlenecks, redundancy.Redundancies)

	result := &AnalysisResult{
		SessionID:       uuid.NewString(),
		CompanyID:       companyID,
		GeneratedAt:     time.Now(),
		Bottlenecks:     bottlenecks,
		Redundancies:    redundancy.Redundancies,
		Insights:        insights,
		Graph:           analysis.ExportGraph(g),
		Visualizations:  analysis.BuildVisualizationData(g, bottlenecks),
		UpdateSchedule:  analysis.NewUpdateSchedule(companyID, time.Now()),
		CyclesTruncated: redundancy.CyclesTruncated,
	}

	elapsed := time.Since(start)
	e.metrics.RecordAnalysis("success", elapsed)
	for _, b := range bottlenecks {
		e.metrics.RecordBottleneck(string(b.Type))
	}
	for _, r := range redundancy.Redundancies {
		e.metrics.RecordRedundancy(string(r.Type))
	}
	if redundancy.CyclesTruncated {
		e.metrics.RecordCyclesTruncated()
	}

	e.logger.Info("analysis complete",
		logging.String("company", companyID),
		logging.String("session", result.SessionID),
		logging.Int("bottlenecks", len(bottlenecks)),
		logging.Int("redundancies", len(redundancy.Redundancies)),
		logging.Float64("savings_hours_per_week", insights.ExecutiveSummary.PotentialTimeSavingsHours),
		logging.Bool("cycles_truncated", redundancy.CyclesTruncated),
		logging.Duration("elapsed", elapsed))

	return result, nil
}

// Graph returns the company's current graph. The caller must treat it as a
// read-only snapshot; mutation belongs to IngestResponses alone.
func (e *Engine) Graph(companyID string) (*workflow.CompanyWorkflowGraph, error) {
	state, err := e.company(companyID, false)
	if err != nil {
		return nil, err
	}
	return state.graph, nil
}
