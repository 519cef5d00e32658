package algorithms

import (
	"container/list"

	"github.com/flowlens/flowlens/pkg/workflow"
)

// Component is one weakly connected component, listed as node ids.
type Component []string

// WeaklyConnectedComponents finds all connected components, treating edges
// as undirected. Components are discovered by BFS in node-id order, so the
// result is deterministic for a fixed graph.
func WeaklyConnectedComponents(g *workflow.CompanyWorkflowGraph) []Component {
	visited := make(map[string]bool)
	components := make([]Component, 0)

	for _, start := range g.NodeIDs() {
		if visited[start] {
			continue
		}

		component := make(Component, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			nodeID, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			component = append(component, nodeID)

			for _, neighbor := range g.OutNeighbors(nodeID) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
			for _, neighbor := range g.InNeighbors(nodeID) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		components = append(components, component)
	}

	return components
}
