package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphbench/internal/api"
	"github.com/persistorai/graphbench/internal/models"
)

func newReportRouter(svc *mockWorker) *gin.Engine {
	h := api.NewReportHandler(svc, testLogger())
	r := gin.New()
	r.POST("/reports/:kind", h.Compute)
	r.GET("/reports/:kind", h.Get)

	return r
}

func TestReportCompute_OptionalBody(t *testing.T) {
	t.Parallel()

	var starts []int
	svc := &mockWorker{
		writeFn: func(_ context.Context, kind models.ReportKind, req models.ReportRequest) (*models.ReportSummary, error) {
			starts = append(starts, req.Start)
			return &models.ReportSummary{Kind: kind, Rows: 1, Complete: true}, nil
		},
	}
	r := newReportRouter(svc)

	if w := doRequest(r, http.MethodPost, "/reports/mst", ""); w.Code != http.StatusOK {
		t.Fatalf("mst: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doRequest(r, http.MethodPost, "/reports/ssp", `{"start":4}`); w.Code != http.StatusOK {
		t.Fatalf("ssp: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if fmt.Sprint(starts) != "[0 4]" {
		t.Errorf("starts = %v", starts)
	}
}

func TestReportGet_CSV(t *testing.T) {
	t.Parallel()

	svc := &mockWorker{
		readFn: func(_ context.Context, kind models.ReportKind) ([]byte, error) {
			if kind == models.ReportSSP {
				return nil, fmt.Errorf("%s: %w", kind, models.ErrReportNotFound)
			}
			return []byte("u,v,weight\n0,1,2.0000\n"), nil
		},
	}
	r := newReportRouter(svc)

	w := doRequest(r, http.MethodGet, "/reports/mst", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.String() != "u,v,weight\n0,1,2.0000\n" {
		t.Errorf("body = %q", w.Body.String())
	}

	if w := doRequest(r, http.MethodGet, "/reports/ssp", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing report: expected 404, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/reports/bogus", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown kind: expected 404, got %d", w.Code)
	}
}
