package models

import (
	"encoding/json"
	"fmt"
)

// Edge is a directed (source, target) pair. It travels on the wire as a
// two-element JSON array, e.g. [3, 7].
type Edge struct {
	U int
	V int
}

// MarshalJSON encodes the edge as [u, v].
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.U, e.V})
}

// UnmarshalJSON decodes an edge from [u, v].
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("edge must be a [source, target] array: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("edge must have exactly 2 elements, got %d", len(pair))
	}

	e.U, e.V = pair[0], pair[1]

	return nil
}

// ValidateEdges checks that every id in the batch is non-negative.
func ValidateEdges(edges []Edge) error {
	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			return fmt.Errorf("edge %d (%d, %d): %w", i, e.U, e.V, UnknownNode(min(e.U, e.V)))
		}
	}

	return nil
}

// WeightedEdge is an undirected edge accepted into a spanning forest.
type WeightedEdge struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}
