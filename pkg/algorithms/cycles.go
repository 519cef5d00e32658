package algorithms

import (
	"github.com/flowlens/flowlens/pkg/workflow"
)

// Cycle is a detected cycle as a sequence of node IDs.
type Cycle []string

const (
	white = 0 // unvisited
	gray  = 1 // currently visiting (in recursion stack)
	black = 2 // finished visiting
)

// CycleDetectionOptions bounds cycle enumeration so a pathologically dense
// graph cannot stall the caller. Zero values mean unbounded.
type CycleDetectionOptions struct {
	MaxCycles      int // stop after reporting this many cycles
	MaxCycleLength int // drop cycles longer than this
}

// CycleDetectionResult holds the enumerated cycles and whether the
// enumeration was cut short by MaxCycles.
type CycleDetectionResult struct {
	Cycles    []Cycle
	Truncated bool
}

// DetectCycles finds cycles using DFS with three-color marking. Each back
// edge to a gray node yields one cycle, reconstructed from parent pointers;
// a self-loop yields a cycle of length 1. An acyclic graph returns an empty
// result, never an error.
func DetectCycles(g *workflow.CompanyWorkflowGraph, opts CycleDetectionOptions) CycleDetectionResult {
	d := &cycleDetector{
		graph:  g,
		opts:   opts,
		color:  make(map[string]int),
		parent: make(map[string]string),
	}

	for _, id := range g.NodeIDs() {
		if d.truncated {
			break
		}
		if d.color[id] == white {
			d.visit(id)
		}
	}

	return CycleDetectionResult{Cycles: d.cycles, Truncated: d.truncated}
}

type cycleDetector struct {
	graph     *workflow.CompanyWorkflowGraph
	opts      CycleDetectionOptions
	color     map[string]int
	parent    map[string]string
	cycles    []Cycle
	truncated bool
}

func (d *cycleDetector) visit(nodeID string) {
	d.color[nodeID] = gray

	for _, neighbor := range d.graph.OutNeighbors(nodeID) {
		if d.truncated {
			break
		}

		if neighbor == nodeID {
			d.report(Cycle{nodeID})
			continue
		}

		switch d.color[neighbor] {
		case white:
			d.parent[neighbor] = nodeID
			d.visit(neighbor)
		case gray:
			// Back edge: the cycle runs from neighbor down the tree to nodeID
			d.report(d.extractCycle(neighbor, nodeID))
		}
		// black neighbors are forward/cross edges, no cycle
	}

	d.color[nodeID] = black
}

func (d *cycleDetector) report(cycle Cycle) {
	if d.opts.MaxCycleLength > 0 && len(cycle) > d.opts.MaxCycleLength {
		return
	}
	d.cycles = append(d.cycles, cycle)
	if d.opts.MaxCycles > 0 && len(d.cycles) >= d.opts.MaxCycles {
		d.truncated = true
	}
}

// extractCycle reconstructs the cycle for a back edge end -> start by
// walking parent pointers from end back up to start.
func (d *cycleDetector) extractCycle(start, end string) Cycle {
	cycle := Cycle{start}
	current := end
	for current != start {
		cycle = append(cycle, current)
		p, ok := d.parent[current]
		if !ok {
			break
		}
		current = p
	}
	return cycle
}

// HasCycle reports whether the graph contains any cycle. Cheaper than
// DetectCycles because it stops at the first back edge.
func HasCycle(g *workflow.CompanyWorkflowGraph) bool {
	color := make(map[string]int)

	var visit func(string) bool
	visit = func(nodeID string) bool {
		color[nodeID] = gray
		for _, neighbor := range g.OutNeighbors(nodeID) {
			if neighbor == nodeID {
				return true
			}
			switch color[neighbor] {
			case white:
				if visit(neighbor) {
					return true
				}
			case gray:
				return true
			}
		}
		color[nodeID] = black
		return false
	}

	for _, id := range g.NodeIDs() {
		if color[id] == white {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

// IsAcyclic reports whether the graph is a DAG.
func IsAcyclic(g *workflow.CompanyWorkflowGraph) bool {
	return !HasCycle(g)
}
