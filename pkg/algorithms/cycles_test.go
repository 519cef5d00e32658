package algorithms

import (
	"testing"
)

func TestDetectCycles_NoCycles(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	result := DetectCycles(g, CycleDetectionOptions{})
	if len(result.Cycles) != 0 {
		t.Errorf("Expected no cycles, got %d", len(result.Cycles))
	}
	if result.Truncated {
		t.Error("Expected no truncation")
	}
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"a"}, [][2]string{{"a", "a"}})

	result := DetectCycles(g, CycleDetectionOptions{})
	if len(result.Cycles) != 1 {
		t.Fatalf("Expected 1 cycle, got %d", len(result.Cycles))
	}
	if len(result.Cycles[0]) != 1 {
		t.Errorf("Expected cycle length 1, got %d", len(result.Cycles[0]))
	}
}

func TestDetectCycles_Triangle(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	result := DetectCycles(g, CycleDetectionOptions{})
	if len(result.Cycles) != 1 {
		t.Fatalf("Expected exactly 1 cycle, got %d", len(result.Cycles))
	}
	if len(result.Cycles[0]) != 3 {
		t.Errorf("Expected cycle length 3, got %d", len(result.Cycles[0]))
	}
}

func TestDetectCycles_TwoIndependentCycles(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "x", "y", "z"},
		[][2]string{{"a", "b"}, {"b", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}})

	result := DetectCycles(g, CycleDetectionOptions{})
	if len(result.Cycles) != 2 {
		t.Fatalf("Expected 2 cycles, got %d", len(result.Cycles))
	}
}

func TestDetectCycles_MaxCyclesCap(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "x", "y"},
		[][2]string{{"a", "b"}, {"b", "a"}, {"x", "y"}, {"y", "x"}})

	result := DetectCycles(g, CycleDetectionOptions{MaxCycles: 1})
	if len(result.Cycles) != 1 {
		t.Errorf("Expected cap at 1 cycle, got %d", len(result.Cycles))
	}
	if !result.Truncated {
		t.Error("Expected truncation flag when cap hit")
	}
}

func TestDetectCycles_MaxCycleLengthFilter(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "x", "y", "z"},
		[][2]string{{"a", "b"}, {"b", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}})

	result := DetectCycles(g, CycleDetectionOptions{MaxCycleLength: 2})
	if len(result.Cycles) != 1 {
		t.Fatalf("Expected only the 2-cycle to pass the length filter, got %d", len(result.Cycles))
	}
	if len(result.Cycles[0]) != 2 {
		t.Errorf("Expected surviving cycle of length 2, got %d", len(result.Cycles[0]))
	}
}

func TestDetectCycles_EmptyGraph(t *testing.T) {
	g := buildGraph(t, nil, nil)
	result := DetectCycles(g, CycleDetectionOptions{})
	if len(result.Cycles) != 0 {
		t.Errorf("Expected no cycles on empty graph, got %d", len(result.Cycles))
	}
}

func TestHasCycle(t *testing.T) {
	acyclic := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	if HasCycle(acyclic) {
		t.Error("Expected no cycle in a -> b")
	}
	if !IsAcyclic(acyclic) {
		t.Error("Expected IsAcyclic true")
	}

	cyclic := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})
	if !HasCycle(cyclic) {
		t.Error("Expected cycle in a <-> b")
	}

	selfLoop := buildGraph(t, []string{"a"}, [][2]string{{"a", "a"}})
	if !HasCycle(selfLoop) {
		t.Error("Expected self-loop to count as cycle")
	}
}
