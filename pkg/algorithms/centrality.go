package algorithms

import (
	"container/list"

	"github.com/flowlens/flowlens/pkg/workflow"
)

// BetweennessCentrality computes betweenness centrality for all nodes using
// a single O(VE) Brandes pass. Scores are normalised by 1/((n-1)(n-2)) for
// directed graphs, so an isolated node scores 0 and an empty graph yields an
// empty map.
func BetweennessCentrality(g *workflow.CompanyWorkflowGraph) map[string]float64 {
	nodeIDs := g.NodeIDs()

	betweenness := make(map[string]float64, len(nodeIDs))
	for _, id := range nodeIDs {
		betweenness[id] = 0.0
	}

	for _, source := range nodeIDs {
		stack := make([]string, 0, len(nodeIDs))
		predecessors := make(map[string][]string, len(nodeIDs))
		sigma := make(map[string]float64, len(nodeIDs))
		distance := make(map[string]int, len(nodeIDs))

		for _, id := range nodeIDs {
			sigma[id] = 0.0
			distance[id] = -1
		}
		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			stack = append(stack, v)

			for _, w := range g.OutNeighbors(v) {
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependency values
		delta := make(map[string]float64, len(nodeIDs))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	if n := len(nodeIDs); n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for id := range betweenness {
			betweenness[id] *= normFactor
		}
	}

	return betweenness
}

// DegreeCentrality computes degree centrality for all nodes: total degree
// (in + out) divided by n-1.
func DegreeCentrality(g *workflow.CompanyWorkflowGraph) map[string]float64 {
	nodeIDs := g.NodeIDs()
	degree := make(map[string]float64, len(nodeIDs))

	for _, id := range nodeIDs {
		if len(nodeIDs) > 1 {
			total := g.InDegree(id) + g.OutDegree(id)
			degree[id] = float64(total) / float64(len(nodeIDs)-1)
		} else {
			degree[id] = 0.0
		}
	}

	return degree
}
