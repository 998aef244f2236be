package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortestPath_Fixture(t *testing.T) {
	t.Parallel()

	// 3 -> 3 gives node 3 a compact index.
	g := buildWeighted([]weighted{
		{0, 1, 2}, {1, 2, 2}, {0, 2, 10}, {2, 3, 1}, {3, 3, 1},
	})

	assert.Equal(t, map[int]int{0: 0, 1: 2, 2: 4, 3: 5}, g.ShortestPath(0))
}

func TestShortestPath_RoundsWeights(t *testing.T) {
	t.Parallel()

	g := buildWeighted([]weighted{
		{0, 1, 1.5}, {1, 2, 2.4}, {2, 2, 1},
	})

	assert.Equal(t, map[int]int{0: 0, 1: 2, 2: 4}, g.ShortestPath(0))
}

func TestShortestPath_Unreachable(t *testing.T) {
	t.Parallel()

	g := buildWeighted([]weighted{{0, 1, 3}, {1, 1, 1}, {2, 0, 1}})

	got := g.ShortestPath(1)

	assert.Equal(t, map[int]int{0: Unreachable, 1: 0, 2: Unreachable}, got)
}

func TestShortestPath_UnindexedStart(t *testing.T) {
	t.Parallel()

	g := buildWeighted([]weighted{{0, 1, 3}, {1, 0, 1}})

	assert.Equal(t, map[int]int{0: Unreachable, 1: Unreachable, 9: 0}, g.ShortestPath(9))
}
