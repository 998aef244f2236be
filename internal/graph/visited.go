package graph

import "sync/atomic"

// visitedSet marks compact indices. claim is an atomic test-and-set, so under
// concurrent expansion exactly one caller discovers each node.
type visitedSet struct {
	flags []atomic.Bool
	count atomic.Int64
}

func newVisitedSet(n int) *visitedSet {
	return &visitedSet{flags: make([]atomic.Bool, n)}
}

// claim returns true only for the first caller to mark i.
func (s *visitedSet) claim(i int) bool {
	if s.flags[i].CompareAndSwap(false, true) {
		s.count.Add(1)
		return true
	}

	return false
}

// indices returns the claimed indices in ascending order.
func (s *visitedSet) indices() []int {
	out := make([]int, 0, s.count.Load())
	for i := range s.flags {
		if s.flags[i].Load() {
			out = append(out, i)
		}
	}

	return out
}
