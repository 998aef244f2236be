// Package generate builds synthetic benchmark graphs already split across workers.
package generate

import (
	"fmt"
	"math/rand/v2"

	"github.com/persistorai/graphbench/internal/models"
)

// Partition holds one edge list per worker, indexed by worker position.
type Partition [][]models.Edge

func newPartition(workers int) Partition {
	return make(Partition, workers)
}

// Workers returns the number of worker slices.
func (p Partition) Workers() int { return len(p) }

// EdgeCount returns the total number of edges across all workers.
func (p Partition) EdgeCount() int {
	n := 0
	for _, edges := range p {
		n += len(edges)
	}
	return n
}

// All returns every edge in worker order.
func (p Partition) All() []models.Edge {
	out := make([]models.Edge, 0, p.EdgeCount())
	for _, edges := range p {
		out = append(out, edges...)
	}
	return out
}

// BySource splits edges across workers by source id: edge (u, v) goes to
// worker u mod workers.
func BySource(edges []models.Edge, workers int) (Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", models.ErrInvalidArgument, workers)
	}

	p := newPartition(workers)
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("%w: edge (%d, %d) has a negative id", models.ErrInvalidArgument, e.U, e.V)
		}
		w := e.U % workers
		p[w] = append(p[w], e)
	}

	return p, nil
}

func validate(totalNodes, avgDegree, workers int) error {
	if totalNodes < 1 {
		return fmt.Errorf("%w: total nodes must be positive, got %d", models.ErrInvalidArgument, totalNodes)
	}
	if avgDegree < 1 {
		return fmt.Errorf("%w: average degree must be positive, got %d", models.ErrInvalidArgument, avgDegree)
	}
	if workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", models.ErrInvalidArgument, workers)
	}
	return nil
}

// Connected generates a graph over ids [0, totalNodes) whose undirected
// closure is connected, assigning edge (u, v) to worker u mod workers.
//
// Node i > 0 first links to a random earlier node, forming a spanning tree.
// Each node then gets rng.IntN(avgDegree) extra edges to random non-self
// targets, and finally a self loop so every node is a source on its worker.
func Connected(totalNodes, avgDegree, workers int, rng *rand.Rand) (Partition, error) {
	if err := validate(totalNodes, avgDegree, workers); err != nil {
		return nil, err
	}

	p := newPartition(workers)
	add := func(u, v int) {
		w := u % workers
		p[w] = append(p[w], models.Edge{U: u, V: v})
	}

	for i := 1; i < totalNodes; i++ {
		add(i, rng.IntN(i))
	}

	for u := range totalNodes {
		deg := rng.IntN(avgDegree)
		for range deg {
			if v := rng.IntN(totalNodes); v != u {
				add(u, v)
			}
		}
	}

	for i := range totalNodes {
		add(i, i)
	}

	return p, nil
}

// ComponentAssigned generates numComponents disjoint blocks of
// totalNodes/numComponents nodes and places each whole block on worker
// c mod workers, so no edge crosses a worker boundary. Each node gets
// 1..avgDegree random edges inside its block plus a self loop. Blocks are
// random, not guaranteed connected.
func ComponentAssigned(totalNodes, numComponents, avgDegree, workers int, rng *rand.Rand) (Partition, error) {
	if err := validate(totalNodes, avgDegree, workers); err != nil {
		return nil, err
	}
	if numComponents < 1 || numComponents > totalNodes {
		return nil, fmt.Errorf("%w: components must be in [1, %d], got %d", models.ErrInvalidArgument, totalNodes, numComponents)
	}

	p := newPartition(workers)
	perComp := totalNodes / numComponents

	for c := range numComponents {
		off := c * perComp
		w := c % workers

		for i := range perComp {
			u := off + i
			deg := rng.IntN(avgDegree) + 1
			for range deg {
				if v := off + rng.IntN(perComp); v != u {
					p[w] = append(p[w], models.Edge{U: u, V: v})
				}
			}
		}

		for i := range perComp {
			p[w] = append(p[w], models.Edge{U: off + i, V: off + i})
		}
	}

	return p, nil
}
