package graph

import (
	"container/heap"
	"math"
)

// Unreachable is the distance reported for nodes the source cannot reach.
const Unreachable = math.MaxInt32

type distItem struct {
	idx  int
	dist int
}

type distQueue []distItem

func (q distQueue) Len() int           { return len(q) }
func (q distQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x any)        { *q = append(*q, x.(distItem)) }
func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// ShortestPath runs Dijkstra from start with each edge cost rounded to the
// nearest integer. Every indexed node appears in the result, at Unreachable
// when no path exists. An unindexed start maps only itself to 0.
func (g *CSR) ShortestPath(start int) map[int]int {
	n := g.NodeCount()
	out := make(map[int]int, n+1)

	for _, id := range g.nodeMap {
		out[id] = Unreachable
	}
	out[start] = 0

	si, ok := g.nodeToIndex[start]
	if !ok {
		return out
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[si] = 0

	q := &distQueue{{idx: si, dist: 0}}
	for q.Len() > 0 {
		cur := heap.Pop(q).(distItem)
		if cur.dist > dist[cur.idx] {
			continue
		}

		for _, vi := range g.neighborIndices(cur.idx) {
			// Parallel edges resolve to the first stored slot, as EdgeWeight does.
			cost := int(math.Round(g.slotWeight(cur.idx, vi)))

			cand := cur.dist + cost
			if cand < dist[vi] {
				dist[vi] = cand
				heap.Push(q, distItem{idx: vi, dist: cand})
			}
		}
	}

	for i, d := range dist {
		out[g.nodeMap[i]] = d
	}

	return out
}
