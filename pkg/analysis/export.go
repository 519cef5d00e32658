package analysis

import (
	"github.com/flowlens/flowlens/pkg/algorithms"
	"github.com/flowlens/flowlens/pkg/workflow"
)

// ExportGraph produces the node/edge list and summary statistics consumed by
// the reporting collaborator. Node coordinates are not computed here; layout
// is the renderer's concern.
func ExportGraph(g *workflow.CompanyWorkflowGraph) GraphExport {
	stats := g.GetStatistics()
	return GraphExport{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
		Statistics: ExportStatistics{
			TotalNodes:          stats.NodeCount,
			TotalEdges:          stats.EdgeCount,
			IsDAG:               algorithms.IsAcyclic(g),
			ConnectedComponents: len(algorithms.WeaklyConnectedComponents(g)),
		},
	}
}
