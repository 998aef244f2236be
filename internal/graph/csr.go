package graph

import (
	"math"
	"slices"

	"github.com/persistorai/graphbench/internal/models"
)

var inf = math.Inf(1)

// CSR is an immutable compressed adjacency representation. Only ids seen as
// an edge source receive a compact index; edges pointing at an id without
// one are dropped at build time.
type CSR struct {
	nodeMap     []int       // compact index -> real id, ascending
	nodeToIndex map[int]int // real id -> compact index
	csrIndex    []int       // len n+1; slots of i are csrIndex[i]:csrIndex[i+1]
	csrEdges    []int       // target compact indices, grouped by source
	edgeWeights []float64   // parallel to csrEdges, in [1, 10)
}

func buildCSR(adj map[int][]int, weight WeightFunc) *CSR {
	nodes := make([]int, 0, len(adj))
	for u := range adj {
		nodes = append(nodes, u)
	}
	slices.Sort(nodes)

	n := len(nodes)
	g := &CSR{
		nodeMap:     nodes,
		nodeToIndex: make(map[int]int, n),
		csrIndex:    make([]int, n+1),
	}
	for i, id := range nodes {
		g.nodeToIndex[id] = i
	}

	total := 0
	for _, targets := range adj {
		total += len(targets)
	}
	g.csrEdges = make([]int, 0, total)

	for i, u := range nodes {
		g.csrIndex[i] = len(g.csrEdges)
		for _, v := range adj[u] {
			if vi, ok := g.nodeToIndex[v]; ok {
				g.csrEdges = append(g.csrEdges, vi)
			}
		}
	}
	g.csrIndex[n] = len(g.csrEdges)

	g.edgeWeights = make([]float64, len(g.csrEdges))
	for i := 0; i < n; i++ {
		u := nodes[i]
		for j := g.csrIndex[i]; j < g.csrIndex[i+1]; j++ {
			g.edgeWeights[j] = weight(u, nodes[g.csrEdges[j]])
		}
	}

	return g
}

// NodeCount returns the number of indexed nodes.
func (g *CSR) NodeCount() int { return len(g.nodeMap) }

// EdgeCount returns the number of stored edge slots.
func (g *CSR) EdgeCount() int { return len(g.csrEdges) }

// Nodes returns the indexed ids in ascending order.
func (g *CSR) Nodes() []int { return slices.Clone(g.nodeMap) }

// HasNode reports whether id has a compact index.
func (g *CSR) HasNode(id int) bool {
	_, ok := g.nodeToIndex[id]
	return ok
}

// OutDegree returns the number of stored out-edges of id (0 when unindexed).
func (g *CSR) OutDegree(id int) int {
	i, ok := g.nodeToIndex[id]
	if !ok {
		return 0
	}

	return g.csrIndex[i+1] - g.csrIndex[i]
}

// Neighbors returns the target ids of id in insertion order, or an empty
// slice when id has no compact index.
func (g *CSR) Neighbors(id int) []int {
	i, ok := g.nodeToIndex[id]
	if !ok {
		return []int{}
	}

	start, end := g.csrIndex[i], g.csrIndex[i+1]
	out := make([]int, end-start)
	for k := start; k < end; k++ {
		out[k-start] = g.nodeMap[g.csrEdges[k]]
	}

	return out
}

// EdgeWeight returns the weight of the first u→v slot, or +Inf when u or v is
// unindexed or no such edge exists. O(out-degree(u)).
func (g *CSR) EdgeWeight(u, v int) float64 {
	ui, ok := g.nodeToIndex[u]
	if !ok {
		return inf
	}

	vi, ok := g.nodeToIndex[v]
	if !ok {
		return inf
	}

	return g.slotWeight(ui, vi)
}

func (g *CSR) slotWeight(ui, vi int) float64 {
	for k := g.csrIndex[ui]; k < g.csrIndex[ui+1]; k++ {
		if g.csrEdges[k] == vi {
			return g.edgeWeights[k]
		}
	}

	return inf
}

// Edges materializes the CSR back into an edge list in source-major order.
func (g *CSR) Edges() []models.Edge {
	out := make([]models.Edge, 0, len(g.csrEdges))
	for i, u := range g.nodeMap {
		for k := g.csrIndex[i]; k < g.csrIndex[i+1]; k++ {
			out = append(out, models.Edge{U: u, V: g.nodeMap[g.csrEdges[k]]})
		}
	}

	return out
}

// neighborIndices returns the compact target indices of compact index i.
// The slice aliases CSR storage and must not be modified.
func (g *CSR) neighborIndices(i int) []int {
	return g.csrEdges[g.csrIndex[i]:g.csrIndex[i+1]]
}

// ids converts sorted compact indices to real ids (ascending, since nodeMap is sorted).
func (g *CSR) ids(indices []int) []int {
	out := make([]int, len(indices))
	for k, i := range indices {
		out[k] = g.nodeMap[i]
	}

	return out
}
