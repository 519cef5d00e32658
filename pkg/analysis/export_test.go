package analysis

import (
	"testing"

	"github.com/flowlens/flowlens/pkg/workflow"
)

func TestExportGraph(t *testing.T) {
	g := buildTestGraph(t, []testNodeSpec{
		{id: "a", name: "Draft", dept: "Sales"},
		{id: "b", name: "Review", dept: "Legal"},
		{id: "c", name: "Sign", dept: "Legal"},
		{id: "island", name: "Standalone", dept: "Ops"},
	}, [][2]string{{"a", "b"}, {"b", "c"}})

	export := ExportGraph(g)
	if export.Statistics.TotalNodes != 4 || export.Statistics.TotalEdges != 2 {
		t.Errorf("Unexpected statistics: %+v", export.Statistics)
	}
	if !export.Statistics.IsDAG {
		t.Error("Expected acyclic graph reported as DAG")
	}
	if export.Statistics.ConnectedComponents != 2 {
		t.Errorf("Expected 2 components, got %d", export.Statistics.ConnectedComponents)
	}
	if len(export.Nodes) != 4 || len(export.Edges) != 2 {
		t.Errorf("Expected full node/edge lists, got %d nodes %d edges", len(export.Nodes), len(export.Edges))
	}
	// Node and edge lists come back in sorted order for stable reports
	if export.Edges[0].From != "a" || export.Edges[1].From != "b" {
		t.Errorf("Expected deterministic edge order, got %v", export.Edges)
	}
}

func TestExportGraph_CyclicNotDAG(t *testing.T) {
	g := buildTestGraph(t,
		[]testNodeSpec{{id: "a", name: "A", dept: "Ops"}, {id: "b", name: "B", dept: "Ops"}},
		[][2]string{{"a", "b"}, {"b", "a"}})

	export := ExportGraph(g)
	if export.Statistics.IsDAG {
		t.Error("Expected cyclic graph reported as not a DAG")
	}
}

func TestExportGraph_Empty(t *testing.T) {
	g := workflow.NewCompanyWorkflowGraph("test")
	export := ExportGraph(g)
	if export.Statistics.TotalNodes != 0 || export.Statistics.ConnectedComponents != 0 {
		t.Errorf("Unexpected empty-graph statistics: %+v", export.Statistics)
	}
	if !export.Statistics.IsDAG {
		t.Error("Expected empty graph to count as a DAG")
	}
}
