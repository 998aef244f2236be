package models

import "fmt"

// PageRankRequest is the payload for POST /pagerank.
type PageRankRequest struct {
	Component []int   `json:"component"`
	MaxIter   int     `json:"max_iter"`
	Damping   float64 `json:"damping"`
}

// Validate checks iteration count and damping range.
func (r *PageRankRequest) Validate() error {
	if r.MaxIter < 0 {
		return invalidf("max_iter must be non-negative")
	}

	if r.Damping <= 0 || r.Damping >= 1 {
		return invalidf("damping must be in (0, 1), got %v", r.Damping)
	}

	return nil
}

// PageRankResult maps node id to rank.
type PageRankResult struct {
	Ranks map[int]float64 `json:"ranks"`
}

// MSTResult holds the accepted edges of a minimum spanning forest, in acceptance order.
type MSTResult struct {
	Edges       []WeightedEdge `json:"edges"`
	TotalWeight float64        `json:"total_weight"`
}

// ShortestPathResult maps node id to integer distance from Start.
// Unreached nodes carry the Unreachable sentinel.
type ShortestPathResult struct {
	Start     int         `json:"start"`
	Distances map[int]int `json:"distances"`
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
