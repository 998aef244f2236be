package client

import (
	"context"
)

// GraphService handles the build cycle: load, finalize, clear.
type GraphService struct {
	c *Client
}

// Load appends a batch of edges to the worker's build session.
func (s *GraphService) Load(ctx context.Context, edges []Edge) (*LoadResult, error) {
	var resp LoadResult
	if err := s.c.post(ctx, "/api/v1/graph/load", map[string][]Edge{"edges": edges}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Finalize builds the CSR from everything loaded so far.
func (s *GraphService) Finalize(ctx context.Context) (*GraphStats, error) {
	var resp GraphStats
	if err := s.c.post(ctx, "/api/v1/graph/finalize", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clear drops the graph, pending edges and stored reports.
func (s *GraphService) Clear(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/graph/clear", nil, nil)
}

// Edges returns every stored edge of the built graph.
func (s *GraphService) Edges(ctx context.Context) ([]Edge, error) {
	var resp struct {
		Edges []Edge `json:"edges"`
	}
	if err := s.c.get(ctx, "/api/v1/graph/edges", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}

// Stats returns node, edge and pending counts.
func (s *GraphService) Stats(ctx context.Context) (*GraphStats, error) {
	var resp GraphStats
	if err := s.c.get(ctx, "/api/v1/graph/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
