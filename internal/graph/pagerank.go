package graph

import (
	"fmt"

	"github.com/persistorai/graphbench/internal/models"
)

// Default PageRank parameters.
const (
	DefaultMaxIter = 10
	DefaultDamping = 0.85
)

// PageRank runs maxIter power iterations over the members of component.
// Ranks are normalized by the number of distinct ids in component, but only
// ids with a compact index are active and ranked. Mass pushed along edges
// that leave the component is lost, so ranks only sum to 1 on edge-closed,
// fully indexed components.
func (g *CSR) PageRank(component []int, maxIter int, damping float64) (map[int]float64, error) {
	if maxIter < 0 {
		return nil, fmt.Errorf("max_iter %d: %w", maxIter, models.ErrInvalidArgument)
	}

	if damping <= 0 || damping >= 1 {
		return nil, fmt.Errorf("damping %g outside (0,1): %w", damping, models.ErrInvalidArgument)
	}

	n := g.NodeCount()
	active := make([]bool, n)
	members := make([]int, 0, len(component))
	distinct := make(map[int]struct{}, len(component))

	for _, id := range component {
		if _, dup := distinct[id]; dup {
			continue
		}
		distinct[id] = struct{}{}

		if i, ok := g.nodeToIndex[id]; ok {
			active[i] = true
			members = append(members, i)
		}
	}

	ranks := make(map[int]float64, len(members))
	if len(members) == 0 {
		return ranks, nil
	}

	size := float64(len(distinct))
	rank := make([]float64, n)
	next := make([]float64, n)

	for _, i := range members {
		rank[i] = 1.0 / size
	}

	for iter := 0; iter < maxIter; iter++ {
		clear(next)

		leak := 0.0
		for _, i := range members {
			targets := g.neighborIndices(i)
			if len(targets) == 0 {
				leak += rank[i]
				continue
			}

			share := damping * rank[i] / float64(len(targets))
			for _, vi := range targets {
				next[vi] += share
			}
		}

		correction := (1.0 - damping + damping*leak) / size
		for _, i := range members {
			next[i] += correction
		}

		rank, next = next, rank
	}

	for _, i := range members {
		ranks[g.nodeMap[i]] = rank[i]
	}

	return ranks, nil
}
