package analysis

import (
	"math"
	"strings"

	"github.com/flowlens/flowlens/pkg/algorithms"
	"github.com/flowlens/flowlens/pkg/workflow"
)

const (
	duplicateSimilarityThreshold = 0.8
	duplicateWasteWeeklyFactor   = 4.0 // weekly waste per hour of the first node's duration
	sameDepartmentWeight         = 0.2
	durationClosenessWeight      = 0.3
	circularWastePerNode         = 3.0
)

// RedundancyResult holds detected redundancies plus whether cycle
// enumeration hit its configured cap.
type RedundancyResult struct {
	Redundancies    []Redundancy
	CyclesTruncated bool
}

// DetectRedundancies finds duplicate processes (pairwise similarity above
// 0.8) and circular dependencies. Pairs are scanned in node-id order, so the
// first node of a duplicate pair is the lexicographically smaller id.
func DetectRedundancies(g *workflow.CompanyWorkflowGraph, cycleOpts algorithms.CycleDetectionOptions) RedundancyResult {
	redundancies := make([]Redundancy, 0)

	nodes := g.Nodes()
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			score := Similarity(nodes[i], nodes[j])
			if score <= duplicateSimilarityThreshold {
				continue
			}
			redundancies = append(redundancies, Redundancy{
				Type:                RedundancyDuplicateProcess,
				Nodes:               []string{nodes[i].ID, nodes[j].ID},
				SimilarityScore:     score,
				Departments:         []string{nodes[i].Department, nodes[j].Department},
				EstimatedWasteHours: nodes[i].DurationHours * duplicateWasteWeeklyFactor,
				Recommendation:      "Consolidate these similar processes",
			})
		}
	}

	cycleResult := algorithms.DetectCycles(g, cycleOpts)
	for _, cycle := range cycleResult.Cycles {
		redundancies = append(redundancies, Redundancy{
			Type:                RedundancyCircularDependency,
			Nodes:               []string(cycle),
			CycleLength:         len(cycle),
			Impact:              "Tasks waiting on each other causing delays",
			EstimatedWasteHours: float64(len(cycle)) * circularWastePerNode,
			Recommendation:      "Break circular dependency by reordering tasks",
		})
	}

	return RedundancyResult{
		Redundancies:    redundancies,
		CyclesTruncated: cycleResult.Truncated,
	}
}

// Similarity scores how alike two workflow nodes are, in [0,1]. The score is
// symmetric: Similarity(a, b) == Similarity(b, a).
//
// Components: shared name tokens divided by the larger token count, +0.2 for
// the same department, and up to +0.3 for close durations.
func Similarity(a, b *workflow.WorkflowNode) float64 {
	score := 0.0

	tokensA := strings.Fields(strings.ToLower(a.Name))
	tokensB := strings.Fields(strings.ToLower(b.Name))
	if len(tokensA) > 0 && len(tokensB) > 0 {
		common := countCommonTokens(tokensA, tokensB)
		if common > 0 {
			score += float64(common) / math.Max(float64(len(tokensA)), float64(len(tokensB)))
		}
	}

	if a.Department == b.Department {
		score += sameDepartmentWeight
	}

	if a.DurationHours != 0 && b.DurationHours != 0 {
		diff := math.Abs(a.DurationHours-b.DurationHours) / math.Max(a.DurationHours, b.DurationHours)
		score += (1 - diff) * durationClosenessWeight
	}

	return math.Min(score, 1.0)
}

func countCommonTokens(a, b []string) int {
	setA := make(map[string]bool, len(a))
	for _, tok := range a {
		setA[tok] = true
	}
	seen := make(map[string]bool, len(b))
	common := 0
	for _, tok := range b {
		if setA[tok] && !seen[tok] {
			seen[tok] = true
			common++
		}
	}
	return common
}
