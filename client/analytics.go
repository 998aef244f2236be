package client

import (
	"context"
	"strconv"
)

// AnalyticsService runs traversal and graph algorithms on a built worker.
type AnalyticsService struct {
	c *Client
}

// Traverse runs a BFS or DFS. start is ignored for ScopeAll.
func (s *AnalyticsService) Traverse(ctx context.Context, mode TraverseMode, scope TraverseScope, start int) (*TraverseResult, error) {
	req := TraverseRequest{Mode: mode, Scope: scope}
	if scope == ScopeSingle {
		req.Start = &start
	}

	var resp TraverseResult
	if err := s.c.post(ctx, "/api/v1/traverse", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Components returns the worker's connected components.
func (s *AnalyticsService) Components(ctx context.Context) ([][]int, error) {
	var resp struct {
		Components [][]int `json:"components"`
	}
	if err := s.c.get(ctx, "/api/v1/components", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Components, nil
}

// PageRank ranks the nodes of one component. Zero MaxIter or Damping selects
// the worker's configured defaults.
func (s *AnalyticsService) PageRank(ctx context.Context, req PageRankRequest) (map[int]float64, error) {
	var resp struct {
		Ranks map[int]float64 `json:"ranks"`
	}
	if err := s.c.post(ctx, "/api/v1/pagerank", req, &resp); err != nil {
		return nil, err
	}
	return resp.Ranks, nil
}

// MST returns the worker's minimum spanning forest.
func (s *AnalyticsService) MST(ctx context.Context) (*MSTResult, error) {
	var resp MSTResult
	if err := s.c.get(ctx, "/api/v1/mst", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ShortestPath returns integer distances from start to every indexed node.
func (s *AnalyticsService) ShortestPath(ctx context.Context, start int) (*ShortestPathResult, error) {
	var resp ShortestPathResult
	if err := s.c.get(ctx, "/api/v1/shortest-path/"+strconv.Itoa(start), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
