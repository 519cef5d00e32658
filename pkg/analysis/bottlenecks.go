package analysis

import (
	"fmt"
	"strings"

	"github.com/flowlens/flowlens/pkg/algorithms"
	"github.com/flowlens/flowlens/pkg/workflow"
)

// Detection thresholds and savings weights. These are calibrated against the
// aggregate counts downstream consumers expect; change them and every report
// shifts.
const (
	capacityCentralityThreshold = 0.3
	capacitySavingsWeight       = 40.0 // weekly hours per unit of centrality
	dependencyInDegreeThreshold = 5
	dependencySavingsPerDep     = 2.0
	approvalSeverity            = 0.7
	approvalSavingsHours        = 10.0
	handoffSeverity             = 0.6
	handoffSavingsHours         = 5.0
)

// DetectBottlenecks runs the four bottleneck heuristics over a graph
// snapshot and concatenates their findings. The passes are independent: a
// node flagged by several heuristics appears once per heuristic. No sort
// order is imposed; callers sort by severity when presenting top-N.
func DetectBottlenecks(g *workflow.CompanyWorkflowGraph) []WorkflowBottleneck {
	bottlenecks := make([]WorkflowBottleneck, 0)
	bottlenecks = append(bottlenecks, capacityBottlenecks(g)...)
	bottlenecks = append(bottlenecks, dependencyBottlenecks(g)...)
	bottlenecks = append(bottlenecks, approvalBottlenecks(g)...)
	bottlenecks = append(bottlenecks, handoffBottlenecks(g)...)
	return bottlenecks
}

// capacityBottlenecks flags nodes whose betweenness centrality exceeds 0.3:
// too much of the company's throughput is routed through one step.
func capacityBottlenecks(g *workflow.CompanyWorkflowGraph) []WorkflowBottleneck {
	centrality := algorithms.BetweennessCentrality(g)

	found := make([]WorkflowBottleneck, 0)
	for _, id := range g.NodeIDs() {
		score := centrality[id]
		if score <= capacityCentralityThreshold {
			continue
		}
		severity := score * 2
		if severity > 1.0 {
			severity = 1.0
		}
		found = append(found, WorkflowBottleneck{
			NodeID:                id,
			Type:                  BottleneckCapacity,
			Severity:              severity,
			Impact:                fmt.Sprintf("This step is a critical path for %d%% of workflows", int(score*100)),
			Recommendation:        "Consider parallelizing or adding resources",
			EstimatedSavingsHours: score * capacitySavingsWeight,
		})
	}
	return found
}

// dependencyBottlenecks flags nodes blocked by more than five other tasks.
func dependencyBottlenecks(g *workflow.CompanyWorkflowGraph) []WorkflowBottleneck {
	found := make([]WorkflowBottleneck, 0)
	for _, id := range g.NodeIDs() {
		inDegree := g.InDegree(id)
		if inDegree <= dependencyInDegreeThreshold {
			continue
		}
		severity := float64(inDegree) / 10.0
		if severity > 1.0 {
			severity = 1.0
		}
		found = append(found, WorkflowBottleneck{
			NodeID:                id,
			Type:                  BottleneckDependency,
			Severity:              severity,
			Impact:                fmt.Sprintf("Blocked by %d other tasks", inDegree),
			Recommendation:        "Reduce dependencies or batch processing",
			EstimatedSavingsHours: float64(inDegree) * dependencySavingsPerDep,
		})
	}
	return found
}

// approvalBottlenecks flags every node whose name contains "approval". This
// is a deliberate lexical heuristic; downstream aggregate counts assume this
// exact rule, so it must not be replaced with anything semantic.
func approvalBottlenecks(g *workflow.CompanyWorkflowGraph) []WorkflowBottleneck {
	found := make([]WorkflowBottleneck, 0)
	for _, node := range g.Nodes() {
		if !strings.Contains(strings.ToLower(node.Name), "approval") {
			continue
		}
		found = append(found, WorkflowBottleneck{
			NodeID:                node.ID,
			Type:                  BottleneckApproval,
			Severity:              approvalSeverity,
			Impact:                "Manual approval causing delays",
			Recommendation:        "Implement automated approval rules for standard cases",
			EstimatedSavingsHours: approvalSavingsHours,
		})
	}
	return found
}

// handoffBottlenecks flags every edge whose endpoints sit in different
// departments. The unit here is the edge, not a node; the synthesized id is
// "{from}_to_{to}".
func handoffBottlenecks(g *workflow.CompanyWorkflowGraph) []WorkflowBottleneck {
	found := make([]WorkflowBottleneck, 0)
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
		found = append(found, WorkflowBottleneck{
			NodeID:                fmt.Sprintf("%s_to_%s", edge.From, edge.To),
			Type:                  BottleneckHandoff,
			Severity:              handoffSeverity,
			Impact:                fmt.Sprintf("Cross-department handoff between %s and %s", fromNode.Department, toNode.Department),
			Recommendation:        "Standardize handoff process or co-locate teams",
			EstimatedSavingsHours: handoffSavingsHours,
		})
	}
	return found
}
