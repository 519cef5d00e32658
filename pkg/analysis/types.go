package analysis

import (
	"time"

	"github.com/flowlens/flowlens/pkg/workflow"
)

// BottleneckType classifies which heuristic flagged a bottleneck.
type BottleneckType string

const (
	BottleneckCapacity   BottleneckType = "capacity"
	BottleneckDependency BottleneckType = "dependency"
	BottleneckApproval   BottleneckType = "approval"
	BottleneckHandoff    BottleneckType = "handoff"
)

// WorkflowBottleneck is one flagged constraint in the graph. Bottlenecks are
// recomputed on every analysis run and never persisted as authoritative
// state. A node may appear in entries from several heuristics.
type WorkflowBottleneck struct {
	NodeID                string         `json:"node_id"`
	Type                  BottleneckType `json:"type"`
	Severity              float64        `json:"severity"`
	Impact                string         `json:"impact"`
	Recommendation        string         `json:"recommendation"`
	EstimatedSavingsHours float64        `json:"estimated_savings_hours"`
}

// RedundancyType classifies detected waste.
type RedundancyType string

const (
	RedundancyDuplicateProcess   RedundancyType = "duplicate_process"
	RedundancyCircularDependency RedundancyType = "circular_dependency"
)

// Redundancy is one detected instance of duplicate or circular work.
type Redundancy struct {
	Type                RedundancyType `json:"type"`
	Nodes               []string       `json:"nodes"`
	SimilarityScore     float64        `json:"similarity_score,omitempty"`
	CycleLength         int            `json:"cycle_length,omitempty"`
	Departments         []string       `json:"departments,omitempty"`
	Impact              string         `json:"impact,omitempty"`
	EstimatedWasteHours float64        `json:"estimated_waste_hours"`
	Recommendation      string         `json:"recommendation"`
}

// ExecutiveSummary carries the headline numbers of an analysis run.
type ExecutiveSummary struct {
	BottlenecksFound            int     `json:"bottlenecks_found"`
	RedundanciesFound           int     `json:"redundancies_found"`
	PotentialTimeSavingsHours   float64 `json:"potential_time_savings_hours_per_week"`
	PotentialCostSavingsPerYear float64 `json:"potential_cost_savings_per_year"`
	AutomationOpportunities     int     `json:"automation_opportunities"`
}

// Recommendation is one prioritized action item. The impact fractions of the
// four standard recommendations (40/30/20/10) are policy constants.
type Recommendation struct {
	Priority           string  `json:"priority"`
	Action             string  `json:"action"`
	ImpactHoursPerWeek float64 `json:"impact_hours_per_week"`
	Effort             string  `json:"effort"`
	Timeline           string  `json:"timeline"`
}

// DepartmentInsight is the per-department rollup.
//
// WeeklyHours is the observed flat duration x5 per process regardless of
// declared frequency; the frequency-aware figure is reported separately in
// the time-analysis series.
type DepartmentInsight struct {
	TotalProcesses       int     `json:"total_processes"`
	Bottlenecks          int     `json:"bottlenecks"`
	AutomationCandidates int     `json:"automation_candidates"`
	WeeklyHours          float64 `json:"weekly_hours"`
}

// QuickWin is a low-effort automation candidate.
type QuickWin struct {
	Action              string  `json:"action"`
	Effort              string  `json:"effort"`
	Impact              string  `json:"impact"`
	Timeline            string  `json:"timeline"`
	SavingsHoursPerWeek float64 `json:"savings_hours_per_week"`
}

// Initiative is a static strategic improvement template. These are
// illustrative configuration, not computed from the graph.
type Initiative struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Investment  string `json:"investment"`
	ROI         string `json:"roi"`
}

// CrossFunctionalWorkflow is a connected chain of processes spanning more
// than one department.
type CrossFunctionalWorkflow struct {
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
	Nodes       []string `json:"nodes"`
	Complexity  int      `json:"complexity"`
}

// KeyProcess is one of the most connected processes in the graph.
type KeyProcess struct {
	Name               string   `json:"name"`
	Department         string   `json:"department"`
	CriticalityScore   float64  `json:"criticality_score"`
	Dependencies       []string `json:"dependencies,omitempty"`
	DependentProcesses []string `json:"dependent_processes,omitempty"`
}

// Insights is the full synthesized report.
type Insights struct {
	ExecutiveSummary         ExecutiveSummary             `json:"executive_summary"`
	TopRecommendations       []Recommendation             `json:"top_recommendations"`
	DepartmentInsights       map[string]DepartmentInsight `json:"department_specific"`
	QuickWins                []QuickWin                   `json:"quick_wins"`
	LongTermInitiatives      []Initiative                 `json:"long_term_initiatives"`
	CrossFunctionalWorkflows []CrossFunctionalWorkflow    `json:"cross_functional_workflows,omitempty"`
	KeyProcesses             []KeyProcess                 `json:"key_processes,omitempty"`
}

// ExportStatistics summarises the exported graph.
type ExportStatistics struct {
	TotalNodes          int  `json:"total_nodes"`
	TotalEdges          int  `json:"total_edges"`
	IsDAG               bool `json:"is_dag"`
	ConnectedComponents int  `json:"connected_components"`
}

// GraphExport is the node/edge list handed to the reporting collaborator for
// visualization. Layout coordinates are out of scope.
type GraphExport struct {
	Nodes      []*workflow.WorkflowNode `json:"nodes"`
	Edges      []workflow.Edge          `json:"edges"`
	Statistics ExportStatistics         `json:"statistics"`
}

// NotificationSettings configures re-survey reminders.
type NotificationSettings struct {
	EmailReminder bool `json:"email_reminder"`
	DaysBefore    int  `json:"days_before"`
}

// UpdateSchedule is static bookkeeping for when a company's graph should be
// refreshed. Departments rotate through progressive re-surveys rather than
// everyone being surveyed at once.
type UpdateSchedule struct {
	CompanyID           string               `json:"company_id"`
	Frequency           string               `json:"frequency"`
	NextUpdate          time.Time            `json:"next_update"`
	UpdateMethod        string               `json:"update_method"`
	DepartmentsPerMonth int                  `json:"departments_per_month"`
	Notifications       NotificationSettings `json:"notification_settings"`
}
