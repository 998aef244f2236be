package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/persistorai/graphbench/internal/api"
	"github.com/persistorai/graphbench/internal/graph"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
	"github.com/persistorai/graphbench/internal/service"
)

func newWorkerRouter(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	w := service.NewWorker(graph.NewStore(graph.WithSeed(1)), report.NewFileStore(dir, "8081"), nil, testLogger(),
		service.Options{ID: "8081"})

	return api.NewRouter(context.Background(), &api.RouterDeps{
		Log:         testLogger(),
		Worker:      w,
		CORSOrigins: []string{"http://localhost:3000"},
		Version:     "test",
		ReportDir:   dir,
	})
}

func TestRouter_BuildCycle(t *testing.T) {
	t.Parallel()

	r := newWorkerRouter(t)

	if w := doRequest(r, http.MethodGet, "/api/v1/mst", ""); w.Code != http.StatusConflict {
		t.Fatalf("mst before finalize: expected 409, got %d", w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/v1/graph/load", `{"edges":[[0,1],[1,2],[2,0],[3,3]]}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("load: expected 202, got %d: %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodPost, "/api/v1/graph/finalize", ""); w.Code != http.StatusOK {
		t.Fatalf("finalize: expected 200, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/v1/traverse", `{"mode":"bfs","scope":"single","start":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("traverse: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var tr models.TraverseResult
	if err := json.Unmarshal(w.Body.Bytes(), &tr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(tr.Visited) != 3 || !tr.Complete {
		t.Errorf("traverse = %+v", tr)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/shortest-path/0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("sssp: expected 200, got %d", w.Code)
	}

	var sp models.ShortestPathResult
	if err := json.Unmarshal(w.Body.Bytes(), &sp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sp.Distances[0] != 0 || sp.Distances[3] != graph.Unreachable {
		t.Errorf("distances = %v", sp.Distances)
	}

	if w := doRequest(r, http.MethodPost, "/api/v1/reports/ssp", `{"start":0}`); w.Code != http.StatusOK {
		t.Fatalf("ssp report: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/reports/ssp", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "node,distance_from_0\n0,0\n") {
		t.Errorf("ssp csv: %d %q", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodPost, "/api/v1/graph/clear", ""); w.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/v1/graph/edges", ""); w.Code != http.StatusConflict {
		t.Errorf("edges after clear: expected 409, got %d", w.Code)
	}
}

func TestRouter_RequestIDAndMetrics(t *testing.T) {
	t.Parallel()

	r := newWorkerRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	w = doRequest(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "graphbench_http_requests_total") {
		t.Errorf("metrics: %d", w.Code)
	}
}
