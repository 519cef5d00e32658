package analysis

import (
	"sort"

	"github.com/flowlens/flowlens/pkg/workflow"
)

const maxAutomationChartEntries = 10

// MapNode is one node in the workflow map series.
type MapNode struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Department string  `json:"department"`
	Duration   float64 `json:"duration"`
}

// WorkflowMap is the node/edge series behind the interactive workflow map.
type WorkflowMap struct {
	Nodes  []MapNode       `json:"nodes"`
	Edges  []workflow.Edge `json:"edges"`
	Layout string          `json:"layout"`
}

// HeatmapRow is one row of the bottleneck severity heatmap.
type HeatmapRow struct {
	Node             string         `json:"node"`
	Type             BottleneckType `json:"type"`
	Severity         float64        `json:"severity"`
	SavingsPotential float64        `json:"savings_potential"`
}

// DepartmentFlow is one inter-department edge aggregate for the Sankey
// series.
type DepartmentFlow struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// AutomationOpportunity is one bar of the automation chart. HoursSaved is
// duration x potential x 40.
type AutomationOpportunity struct {
	Process    string  `json:"process"`
	Potential  float64 `json:"potential"`
	HoursSaved float64 `json:"hours_saved"`
}

// TimeAnalysis is the frequency-normalised weekly hours per department.
type TimeAnalysis struct {
	ByDepartment map[string]float64 `json:"by_department"`
	TotalHours   float64            `json:"total_hours"`
}

// VisualizationData bundles the data series that drive report visuals.
// Rendering itself is an external collaborator.
type VisualizationData struct {
	WorkflowMap       WorkflowMap             `json:"workflow_map"`
	BottleneckHeatmap []HeatmapRow            `json:"bottleneck_heatmap"`
	DepartmentFlow    []DepartmentFlow        `json:"department_flow"`
	AutomationChart   []AutomationOpportunity `json:"automation_opportunities"`
	TimeAnalysis      TimeAnalysis            `json:"time_analysis"`
}

// BuildVisualizationData assembles every visualization series from a graph
// snapshot and the bottlenecks detected on it.
func BuildVisualizationData(g *workflow.CompanyWorkflowGraph, bottlenecks []WorkflowBottleneck) *VisualizationData {
	return &VisualizationData{
		WorkflowMap:       workflowMap(g),
		BottleneckHeatmap: bottleneckHeatmap(bottlenecks),
		DepartmentFlow:    departmentFlow(g),
		AutomationChart:   automationChart(g),
		TimeAnalysis:      timeAnalysis(g),
	}
}

func workflowMap(g *workflow.CompanyWorkflowGraph) WorkflowMap {
	nodes := make([]MapNode, 0)
	for _, node := range g.Nodes() {
		nodes = append(nodes, MapNode{
			ID:         node.ID,
			Label:      node.Name,
			Department: node.Department,
			Duration:   node.DurationHours,
		})
	}
	return WorkflowMap{
		Nodes:  nodes,
		Edges:  g.Edges(),
		Layout: "hierarchical",
	}
}

func bottleneckHeatmap(bottlenecks []WorkflowBottleneck) []HeatmapRow {
	rows := make([]HeatmapRow, 0, len(bottlenecks))
	for _, b := range bottlenecks {
		rows = append(rows, HeatmapRow{
			Node:             b.NodeID,
			Type:             b.Type,
			Severity:         b.Severity,
			SavingsPotential: b.EstimatedSavingsHours,
		})
	}
	return rows
}

// departmentFlow aggregates cross-department edges into one flow per
// (source, target) department pair.
func departmentFlow(g *workflow.CompanyWorkflowGraph) []DepartmentFlow {
	counts := make(map[[2]string]int)
	for _, edge := range g.Edges() {
		fromNode, err := g.GetNode(edge.From)
		if err != nil {
			continue
		}
		toNode, err := g.GetNode(edge.To)
		if err != nil {
			continue
		}
		if fromNode.Department == toNode.Department {
			continue
		}
		counts[[2]string{fromNode.Department, toNode.Department}]++
	}

	flows := make([]DepartmentFlow, 0, len(counts))
	for pair, count := range counts {
		flows = append(flows, DepartmentFlow{Source: pair[0], Target: pair[1], Value: count})
	}
	sort.Slice(flows, func(i, j int) bool {
		if flows[i].Source != flows[j].Source {
			return flows[i].Source < flows[j].Source
		}
		return flows[i].Target < flows[j].Target
	})
	return flows
}

func automationChart(g *workflow.CompanyWorkflowGraph) []AutomationOpportunity {
	opportunities := make([]AutomationOpportunity, 0)
	for _, node := range g.Nodes() {
		opportunities = append(opportunities, AutomationOpportunity{
			Process:    node.Name,
			Potential:  node.AutomationPotential,
			HoursSaved: node.DurationHours * node.AutomationPotential * 40,
		})
	}
	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Potential > opportunities[j].Potential
	})
	if len(opportunities) > maxAutomationChartEntries {
		opportunities = opportunities[:maxAutomationChartEntries]
	}
	return opportunities
}

// timeAnalysis uses the declared frequency of each activity, unlike the
// department rollup in the insights report.
func timeAnalysis(g *workflow.CompanyWorkflowGraph) TimeAnalysis {
	byDept := make(map[string]float64)
	total := 0.0
	for _, node := range g.Nodes() {
		hours := node.WeeklyHours()
		byDept[node.Department] += hours
		total += hours
	}
	return TimeAnalysis{ByDepartment: byDept, TotalHours: total}
}
