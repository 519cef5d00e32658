package workflow

import (
	"sort"
)

// CompanyWorkflowGraph is one company's dependency graph of workflow nodes.
// It is a plain value object: mutable during ingestion, then treated as a
// read-only snapshot by the detectors. Callers serialise writes (the engine
// holds an exclusive lock per company during ingestion).
type CompanyWorkflowGraph struct {
	CompanyID string

	nodes    map[string]*WorkflowNode
	outgoing map[string]map[string]bool // dependency -> dependents
	incoming map[string]map[string]bool // dependent  -> dependencies
}

// Statistics summarises graph size.
type Statistics struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// NewCompanyWorkflowGraph creates an empty graph for the given company.
func NewCompanyWorkflowGraph(companyID string) *CompanyWorkflowGraph {
	return &CompanyWorkflowGraph{
		CompanyID: companyID,
		nodes:     make(map[string]*WorkflowNode),
		outgoing:  make(map[string]map[string]bool),
		incoming:  make(map[string]map[string]bool),
	}
}

// UpsertNode inserts node or merges it onto an existing node with the same
// id. Merge overwrites department, owner, duration, frequency and tools with
// the newer values and unions pain points and dependencies.
func (g *CompanyWorkflowGraph) UpsertNode(node *WorkflowNode) error {
	if node == nil || node.ID == "" {
		return &GraphError{Op: "UpsertNode", Entity: "node", Cause: ErrEmptyNodeID}
	}

	existing, ok := g.nodes[node.ID]
	if !ok {
		stored := *node
		stored.Dependencies = append([]string(nil), node.Dependencies...)
		stored.ToolsUsed = append([]string(nil), node.ToolsUsed...)
		stored.PainPoints = append([]string(nil), node.PainPoints...)
		g.nodes[node.ID] = &stored
		return nil
	}

	existing.Name = node.Name
	existing.Department = node.Department
	existing.Owner = node.Owner
	existing.DurationHours = node.DurationHours
	existing.Frequency = node.Frequency
	existing.ToolsUsed = append([]string(nil), node.ToolsUsed...)
	existing.AutomationPotential = node.AutomationPotential
	existing.PainPoints = unionStrings(existing.PainPoints, node.PainPoints)
	existing.Dependencies = unionStrings(existing.Dependencies, node.Dependencies)
	return nil
}

// AddDependency records the directed edge from -> to (from must complete
// before to). Duplicate statements collapse to a single edge. Both endpoints
// must already exist; the builder guarantees this by creating stub nodes.
func (g *CompanyWorkflowGraph) AddDependency(from, to string) error {
	if from == "" || to == "" {
		return &GraphError{Op: "AddDependency", Entity: "edge", Cause: ErrEmptyNodeID}
	}
	if _, ok := g.nodes[from]; !ok {
		return &GraphError{Op: "AddDependency", Entity: "node", ID: from, Cause: ErrNodeNotFound}
	}
	if _, ok := g.nodes[to]; !ok {
		return &GraphError{Op: "AddDependency", Entity: "node", ID: to, Cause: ErrNodeNotFound}
	}

	if g.outgoing[from] == nil {
		g.outgoing[from] = make(map[string]bool)
	}
	if g.incoming[to] == nil {
		g.incoming[to] = make(map[string]bool)
	}
	g.outgoing[from][to] = true
	g.incoming[to][from] = true
	return nil
}

// GetNode returns the node with the given id.
func (g *CompanyWorkflowGraph) GetNode(id string) (*WorkflowNode, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, &GraphError{Op: "GetNode", Entity: "node", ID: id, Cause: ErrNodeNotFound}
	}
	return node, nil
}

// HasNode reports whether a node with the given id exists.
func (g *CompanyWorkflowGraph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns all node ids in sorted order. Sorted iteration keeps every
// analysis pass deterministic for a fixed graph.
func (g *CompanyWorkflowGraph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nodes returns all nodes ordered by id.
func (g *CompanyWorkflowGraph) Nodes() []*WorkflowNode {
	ids := g.NodeIDs()
	nodes := make([]*WorkflowNode, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns every directed edge ordered by (from, to).
func (g *CompanyWorkflowGraph) Edges() []Edge {
	edges := make([]Edge, 0)
	for from, targets := range g.outgoing {
		for to := range targets {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// OutNeighbors returns the dependents of id in sorted order.
func (g *CompanyWorkflowGraph) OutNeighbors(id string) []string {
	return sortedKeys(g.outgoing[id])
}

// InNeighbors returns the dependencies of id in sorted order.
func (g *CompanyWorkflowGraph) InNeighbors(id string) []string {
	return sortedKeys(g.incoming[id])
}

// InDegree returns the number of distinct dependencies feeding id.
func (g *CompanyWorkflowGraph) InDegree(id string) int {
	return len(g.incoming[id])
}

// OutDegree returns the number of distinct dependents of id.
func (g *CompanyWorkflowGraph) OutDegree(id string) int {
	return len(g.outgoing[id])
}

// GetStatistics returns current graph size statistics.
func (g *CompanyWorkflowGraph) GetStatistics() Statistics {
	edgeCount := 0
	for _, targets := range g.outgoing {
		edgeCount += len(targets)
	}
	return Statistics{
		NodeCount: len(g.nodes),
		EdgeCount: edgeCount,
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unionStrings appends items from add that are not already in base,
// preserving first-seen order.
func unionStrings(base, add []string) []string {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[s] = true
	}
	for _, s := range add {
		if !seen[s] {
			seen[s] = true
			base = append(base, s)
		}
	}
	return base
}
