// Package dsu provides a map-backed disjoint-set (union-find) over integer ids.
//
// Elements are added implicitly on first reference. Find compresses paths;
// Union attaches the root of x under the root of y.
package dsu

import "sort"

// UnionFind partitions integer ids into disjoint sets. It is not safe for
// concurrent use; its lifetime is one MST or component-merge call.
type UnionFind struct {
	parent map[int]int
}

// New creates an empty UnionFind with room for sizeHint elements.
func New(sizeHint int) *UnionFind {
	return &UnionFind{parent: make(map[int]int, sizeHint)}
}

// Add inserts x as a singleton set. It is a no-op if x is already present.
func (uf *UnionFind) Add(x int) {
	if _, ok := uf.parent[x]; !ok {
		uf.parent[x] = x
	}
}

// Len returns the number of elements seen so far.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Find returns the representative of the set containing x.
func (uf *UnionFind) Find(x int) int {
	uf.Add(x)

	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// Second pass points every node on the path straight at the root.
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y. It reports whether a merge
// happened (false when both were already in the same set).
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}

	uf.parent[rx] = ry

	return true
}

// Connected reports whether x and y belong to the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Components returns every set as a sorted member list. Sets are ordered by
// their smallest member so the output is deterministic.
func (uf *UnionFind) Components() [][]int {
	groups := make(map[int][]int)
	for x := range uf.parent {
		root := uf.Find(x)
		groups[root] = append(groups[root], x)
	}

	out := make([][]int, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		out = append(out, members)
	}

	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
