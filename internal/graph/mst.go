package graph

import (
	"sort"

	"github.com/persistorai/graphbench/internal/dsu"
	"github.com/persistorai/graphbench/internal/models"
)

type pairKey struct{ lo, hi int }

// MinimumSpanningForest runs Kruskal over every stored edge. Each undirected
// pair is considered once, with the weight of its first stored direction.
// Edges are returned in acceptance order; disconnected graphs yield a forest.
func (g *CSR) MinimumSpanningForest() []models.WeightedEdge {
	seen := make(map[pairKey]struct{}, len(g.csrEdges))
	candidates := make([]models.WeightedEdge, 0, len(g.csrEdges))

	for i, u := range g.nodeMap {
		for k := g.csrIndex[i]; k < g.csrIndex[i+1]; k++ {
			v := g.nodeMap[g.csrEdges[k]]

			key := pairKey{lo: min(u, v), hi: max(u, v)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			candidates = append(candidates, models.WeightedEdge{U: u, V: v, Weight: g.edgeWeights[k]})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Weight < candidates[b].Weight
	})

	uf := dsu.New(g.NodeCount())
	accepted := make([]models.WeightedEdge, 0, g.NodeCount())

	for _, e := range candidates {
		if uf.Union(e.U, e.V) {
			accepted = append(accepted, e)
		}
	}

	return accepted
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []models.WeightedEdge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
