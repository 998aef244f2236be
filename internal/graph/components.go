package graph

import "slices"

// Components partitions the indexed nodes by reach. Roots are taken in
// ascending id order; each unvisited root runs one sequential BFS over
// out-edges and everything it claims forms a component. Components are
// returned in root order, each sorted ascending.
func (g *CSR) Components() [][]int {
	n := g.NodeCount()
	visited := make([]bool, n)
	out := make([][]int, 0)

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}

		visited[root] = true
		members := []int{root}

		for head := 0; head < len(members); head++ {
			for _, vi := range g.neighborIndices(members[head]) {
				if !visited[vi] {
					visited[vi] = true
					members = append(members, vi)
				}
			}
		}

		slices.Sort(members)
		out = append(out, g.ids(members))
	}

	return out
}
