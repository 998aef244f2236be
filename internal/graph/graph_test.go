package graph

import (
	"github.com/persistorai/graphbench/internal/models"
)

type weighted struct {
	u, v int
	w    float64
}

// buildWeighted builds a CSR whose edge weights are exactly the fixture's.
func buildWeighted(edges []weighted) *CSR {
	weights := make(map[[2]int]float64, len(edges))
	for _, e := range edges {
		if _, ok := weights[[2]int{e.u, e.v}]; !ok {
			weights[[2]int{e.u, e.v}] = e.w
		}
	}

	s := NewStore(WithWeightFunc(func(u, v int) float64 { return weights[[2]int{u, v}] }))
	for _, e := range edges {
		s.AddEdge(e.u, e.v)
	}

	return s.Build()
}

func build(edges ...models.Edge) *CSR {
	s := NewStore(WithSeed(1))
	s.AddEdges(edges)

	return s.Build()
}

func e(u, v int) models.Edge { return models.Edge{U: u, V: v} }

// symmetric returns both directions of every pair.
func symmetric(pairs ...models.Edge) []models.Edge {
	out := make([]models.Edge, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p, e(p.V, p.U))
	}

	return out
}
