package analysis

import (
	"math"
	"testing"

	"github.com/flowlens/flowlens/pkg/algorithms"
	"github.com/flowlens/flowlens/pkg/workflow"
)

func redundanciesOfType(redundancies []Redundancy, redundancyType RedundancyType) []Redundancy {
	matched := make([]Redundancy, 0)
	for _, r := range redundancies {
		if r.Type == redundancyType {
			matched = append(matched, r)
		}
	}
	return matched
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarity_NearIdenticalNames(t *testing.T) {
	a := &workflow.WorkflowNode{Name: "Send Invoice", Department: "Finance", DurationHours: 2.0}
	b := &workflow.WorkflowNode{Name: "Send Invoices", Department: "Finance", DurationHours: 2.0}

	// 1 shared token of 2 (0.5) + same department (0.2) + equal durations (0.3)
	if got := Similarity(a, b); !almostEqual(got, 1.0) {
		t.Errorf("Expected similarity 1.0, got %v", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := &workflow.WorkflowNode{Name: "Weekly Report", Department: "Sales", DurationHours: 1.5}
	b := &workflow.WorkflowNode{Name: "Monthly Report Review", Department: "Finance", DurationHours: 4.0}

	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Expected symmetric similarity, got %v vs %v", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilarity_CappedAtOne(t *testing.T) {
	a := &workflow.WorkflowNode{Name: "Data Entry", Department: "Ops", DurationHours: 1.0}
	if got := Similarity(a, a); got != 1.0 {
		t.Errorf("Expected identical nodes to score exactly 1.0, got %v", got)
	}
}

func TestSimilarity_NoSharedTokens(t *testing.T) {
	a := &workflow.WorkflowNode{Name: "Payroll", Department: "HR", DurationHours: 2.0}
	b := &workflow.WorkflowNode{Name: "Onboarding", Department: "HR", DurationHours: 2.0}

	// No name overlap: same department (0.2) + equal durations (0.3) only
	if got := Similarity(a, b); !almostEqual(got, 0.5) {
		t.Errorf("Expected similarity 0.5, got %v", got)
	}
}

func TestDetectRedundancies_DuplicateProcess(t *testing.T) {
	g := buildTestGraph(t, []testNodeSpec{
		{id: "node_send_invoice", name: "Send Invoice", dept: "Finance", duration: 2.0},
		{id: "node_send_invoices", name: "Send Invoices", dept: "Finance", duration: 2.0},
		{id: "node_payroll", name: "Payroll", dept: "HR", duration: 3.0},
	}, nil)

	result := DetectRedundancies(g, algorithms.CycleDetectionOptions{})
	duplicates := redundanciesOfType(result.Redundancies, RedundancyDuplicateProcess)
	if len(duplicates) != 1 {
		t.Fatalf("Expected 1 duplicate pair, got %d", len(duplicates))
	}

	d := duplicates[0]
	if d.Nodes[0] != "node_send_invoice" || d.Nodes[1] != "node_send_invoices" {
		t.Errorf("Expected pair in id order, got %v", d.Nodes)
	}
	if d.SimilarityScore <= duplicateSimilarityThreshold {
		t.Errorf("Expected score above threshold, got %v", d.SimilarityScore)
	}
	// Waste is keyed to the first node of the pair: 2.0 * 4
	if d.EstimatedWasteHours != 8.0 {
		t.Errorf("Expected waste 8, got %v", d.EstimatedWasteHours)
	}
	if len(d.Departments) != 2 || d.Departments[0] != "Finance" {
		t.Errorf("Expected both departments recorded, got %v", d.Departments)
	}
}

func TestDetectRedundancies_ThresholdIsStrict(t *testing.T) {
	// 0.5 token overlap + 0.3 duration closeness with different departments
	// lands at the 0.8 boundary, which must not be flagged.
	g := buildTestGraph(t, []testNodeSpec{
		{id: "a", name: "Send Invoice", dept: "Finance", duration: 2.0},
		{id: "b", name: "Send Invoices", dept: "Sales", duration: 2.0},
	}, nil)

	result := DetectRedundancies(g, algorithms.CycleDetectionOptions{})
	if duplicates := redundanciesOfType(result.Redundancies, RedundancyDuplicateProcess); len(duplicates) != 0 {
		t.Errorf("Expected no duplicates at the boundary, got %+v", duplicates)
	}
}

func TestDetectRedundancies_CircularDependency(t *testing.T) {
	g := buildTestGraph(t,
		[]testNodeSpec{{id: "a", name: "Draft", dept: "Ops"}, {id: "b", name: "Review", dept: "Ops"}, {id: "c", name: "Publish", dept: "Ops"}},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	result := DetectRedundancies(g, algorithms.CycleDetectionOptions{})
	circular := redundanciesOfType(result.Redundancies, RedundancyCircularDependency)
	if len(circular) != 1 {
		t.Fatalf("Expected 1 circular redundancy, got %d", len(circular))
	}

	c := circular[0]
	if c.CycleLength != 3 {
		t.Errorf("Expected cycle length 3, got %d", c.CycleLength)
	}
	if c.EstimatedWasteHours != 9.0 {
		t.Errorf("Expected waste 3*3 = 9, got %v", c.EstimatedWasteHours)
	}
}

func TestDetectRedundancies_TruncationFlag(t *testing.T) {
	g := buildTestGraph(t,
		[]testNodeSpec{{id: "a", name: "A1", dept: "Ops"}, {id: "b", name: "B2", dept: "Sales"}, {id: "x", name: "X3", dept: "HR"}, {id: "y", name: "Y4", dept: "Legal"}},
		[][2]string{{"a", "b"}, {"b", "a"}, {"x", "y"}, {"y", "x"}})

	result := DetectRedundancies(g, algorithms.CycleDetectionOptions{MaxCycles: 1})
	if !result.CyclesTruncated {
		t.Error("Expected truncation flag to surface")
	}
	if circular := redundanciesOfType(result.Redundancies, RedundancyCircularDependency); len(circular) != 1 {
		t.Errorf("Expected cycle list capped at 1, got %d", len(circular))
	}
}

func TestDetectRedundancies_EmptyGraph(t *testing.T) {
	g := workflow.NewCompanyWorkflowGraph("test")
	result := DetectRedundancies(g, algorithms.CycleDetectionOptions{})
	if len(result.Redundancies) != 0 {
		t.Errorf("Expected no redundancies on empty graph, got %d", len(result.Redundancies))
	}
	if result.CyclesTruncated {
		t.Error("Expected no truncation on empty graph")
	}
}

func TestSimilarity_DurationCloseness(t *testing.T) {
	a := &workflow.WorkflowNode{Name: "Alpha", Department: "X", DurationHours: 1.0}
	b := &workflow.WorkflowNode{Name: "Beta", Department: "Y", DurationHours: 4.0}

	// diff = 3/4, closeness contribution = 0.25 * 0.3
	if got := Similarity(a, b); math.Abs(got-0.075) > 1e-9 {
		t.Errorf("Expected 0.075 from duration closeness alone, got %v", got)
	}
}
