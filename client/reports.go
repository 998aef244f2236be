package client

import (
	"context"
	"net/http"
)

// ReportService computes and fetches worker-local CSV reports.
type ReportService struct {
	c *Client
}

// Compute writes the report on the worker. start is used by ReportSSP only.
func (s *ReportService) Compute(ctx context.Context, kind ReportKind, start int) (*ReportSummary, error) {
	var resp ReportSummary
	body := map[string]int{"start": start}
	if err := s.c.post(ctx, "/api/v1/reports/"+string(kind), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get fetches a previously computed report as CSV bytes.
func (s *ReportService) Get(ctx context.Context, kind ReportKind) ([]byte, error) {
	return s.c.send(ctx, http.MethodGet, "/api/v1/reports/"+string(kind), nil)
}
