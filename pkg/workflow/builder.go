package workflow

import (
	"strings"
)

// NodeIDFromName derives the stable node id for an activity name: spaces
// become underscores, then the whole id is lowercased. The derivation must
// stay deterministic so that every employee reporting the same activity name
// lands on the same node.
func NodeIDFromName(name string) string {
	return "node_" + strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// AutomationPotential scores how automatable an activity is, in [0,1].
// The additive weights are policy constants shared with the downstream
// opportunity counts (thresholds 0.7 and 0.8); do not rebalance them.
func AutomationPotential(activity Activity) float64 {
	score := 0.0
	if activity.Repetitive {
		score += 0.3
	}
	if activity.Digital {
		score += 0.3
	}
	if activity.RuleBased {
		score += 0.2
	}
	if activity.RequiresJudgment {
		score -= 0.3
	}
	if activity.Creative {
		score -= 0.2
	}
	if score < 0.0 {
		score = 0.0
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// EmployeeSummary reports what one employee contributed to the graph.
type EmployeeSummary struct {
	EmployeeID         string `json:"employee_id"`
	ActivitiesIngested int    `json:"activities_ingested"`
	PainPointsRecorded int    `json:"pain_points_recorded"`
}

// IngestReport summarises one ingestion pass.
type IngestReport struct {
	EmployeesSurveyed int               `json:"employees_surveyed"`
	ActivitiesTotal   int               `json:"activities_total"`
	StubNodesCreated  int               `json:"stub_nodes_created"`
	Employees         []EmployeeSummary `json:"employees,omitempty"`
}

// Ingest merges a batch of employee responses into the graph. Malformed or
// missing fields never fail the batch: every field has a documented default.
// Activities with an empty name are skipped entirely (no stable id can be
// derived for them).
func Ingest(g *CompanyWorkflowGraph, responses []EmployeeResponse) IngestReport {
	report := IngestReport{}

	for _, resp := range responses {
		summary := EmployeeSummary{
			EmployeeID:         resp.EmployeeID,
			PainPointsRecorded: len(resp.PainPoints),
		}

		for _, activity := range resp.DailyActivities {
			if activity.Name == "" {
				continue
			}
			node := nodeFromActivity(activity, resp)
			g.UpsertNode(node)

			for _, dep := range node.Dependencies {
				if dep == "" {
					continue
				}
				if !g.HasNode(dep) {
					g.UpsertNode(stubNode(dep))
					report.StubNodesCreated++
				}
				g.AddDependency(dep, node.ID)
			}

			summary.ActivitiesIngested++
			report.ActivitiesTotal++
		}

		report.EmployeesSurveyed++
		report.Employees = append(report.Employees, summary)
	}

	return report
}

// nodeFromActivity builds a WorkflowNode with every default applied. The
// activity's own department/owner win over the employee-level values.
func nodeFromActivity(activity Activity, resp EmployeeResponse) *WorkflowNode {
	id := activity.ID
	if id == "" {
		id = NodeIDFromName(activity.Name)
	}

	department := activity.Department
	if department == "" {
		department = resp.Department
	}
	if department == "" {
		department = DefaultDepartment
	}

	owner := activity.Owner
	if owner == "" {
		owner = DefaultOwner
	}

	duration := activity.Duration
	if duration <= 0 {
		duration = DefaultDurationHours
	}

	return &WorkflowNode{
		ID:                  id,
		Name:                activity.Name,
		Department:          department,
		Owner:               owner,
		DurationHours:       duration,
		Frequency:           ParseFrequency(activity.Frequency),
		Dependencies:        append([]string(nil), activity.Dependencies...),
		ToolsUsed:           append([]string(nil), activity.Tools...),
		PainPoints:          append([]string(nil), activity.PainPoints...),
		AutomationPotential: AutomationPotential(activity),
	}
}

// stubNode is the placeholder created for a dependency id that no employee
// has described yet. It guarantees the graph never has a dangling edge
// endpoint.
func stubNode(id string) *WorkflowNode {
	return &WorkflowNode{
		ID:            id,
		Name:          id,
		Department:    DefaultDepartment,
		Owner:         DefaultOwner,
		DurationHours: DefaultDurationHours,
		Frequency:     FrequencyDaily,
	}
}
