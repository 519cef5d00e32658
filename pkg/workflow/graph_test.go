package workflow

import (
	"reflect"
	"testing"
)

func testNode(id, name, dept string, duration float64) *WorkflowNode {
	return &WorkflowNode{
		ID:            id,
		Name:          name,
		Department:    dept,
		Owner:         DefaultOwner,
		DurationHours: duration,
		Frequency:     FrequencyDaily,
	}
}

func TestUpsertNode_CreateAndMerge(t *testing.T) {
	g := NewCompanyWorkflowGraph("acme")

	first := testNode("node_review", "Review", "Finance", 2.0)
	first.PainPoints = []string{"slow"}
	if err := g.UpsertNode(first); err != nil {
		t.Fatalf("UpsertNode failed: %v", err)
	}

	second := testNode("node_review", "Review", "Legal", 3.0)
	second.PainPoints = []string{"slow", "manual"}
	second.ToolsUsed = []string{"email"}
	if err := g.UpsertNode(second); err != nil {
		t.Fatalf("UpsertNode merge failed: %v", err)
	}

	if got := g.GetStatistics().NodeCount; got != 1 {
		t.Fatalf("Expected 1 node after merge, got %d", got)
	}

	node, err := g.GetNode("node_review")
	if err != nil {
		t.Fatalf("GetNode failed: %v", err)
	}
	if node.Department != "Legal" {
		t.Errorf("Expected department overwritten to Legal, got %q", node.Department)
	}
	if node.DurationHours != 3.0 {
		t.Errorf("Expected duration overwritten to 3.0, got %v", node.DurationHours)
	}
	if !reflect.DeepEqual(node.PainPoints, []string{"slow", "manual"}) {
		t.Errorf("Expected pain points unioned, got %v", node.PainPoints)
	}
	if !reflect.DeepEqual(node.ToolsUsed, []string{"email"}) {
		t.Errorf("Expected tools overwritten, got %v", node.ToolsUsed)
	}
}

func TestUpsertNode_EmptyID(t *testing.T) {
	g := NewCompanyWorkflowGraph("acme")
	if err := g.UpsertNode(&WorkflowNode{}); err == nil {
		t.Error("Expected error for empty node id")
	}
}

func TestAddDependency_CollapsesDuplicates(t *testing.T) {
	g := NewCompanyWorkflowGraph("acme")
	g.UpsertNode(testNode("a", "A", "Ops", 1))
	g.UpsertNode(testNode("b", "B", "Ops", 1))

	for i := 0; i < 3; i++ {
		if err := g.AddDependency("a", "b"); err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}
	}

	if got := g.GetStatistics().EdgeCount; got != 1 {
		t.Errorf("Expected duplicate edges to collapse to 1, got %d", got)
	}
	if got := g.InDegree("b"); got != 1 {
		t.Errorf("Expected in-degree 1, got %d", got)
	}
}

func TestAddDependency_MissingEndpoint(t *testing.T) {
	g := NewCompanyWorkflowGraph("acme")
	g.UpsertNode(testNode("a", "A", "Ops", 1))

	if err := g.AddDependency("a", "ghost"); err == nil {
		t.Error("Expected error for missing endpoint")
	}
}

func TestEdges_Deterministic(t *testing.T) {
	g := NewCompanyWorkflowGraph("acme")
	for _, id := range []string{"c", "a", "b"} {
		g.UpsertNode(testNode(id, id, "Ops", 1))
	}
	g.AddDependency("c", "a")
	g.AddDependency("a", "b")
	g.AddDependency("a", "c")

	want := []Edge{{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "c", To: "a"}}
	for i := 0; i < 5; i++ {
		if got := g.Edges(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Expected stable sorted edges %v, got %v", want, got)
		}
	}
}

func TestWeeklyHours_FrequencyNormalization(t *testing.T) {
	cases := []struct {
		frequency Frequency
		duration  float64
		want      float64
	}{
		{FrequencyDaily, 2.0, 10.0},
		{FrequencyWeekly, 2.0, 2.0},
		{FrequencyMonthly, 2.0, 0.5},
		{FrequencyOther, 2.0, 2.0},
	}
	for _, tc := range cases {
		node := &WorkflowNode{DurationHours: tc.duration, Frequency: tc.frequency}
		if got := node.WeeklyHours(); got != tc.want {
			t.Errorf("WeeklyHours(%s, %v) = %v, want %v", tc.frequency, tc.duration, got, tc.want)
		}
	}
}
