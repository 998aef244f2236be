package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphbench/internal/api"
	"github.com/persistorai/graphbench/internal/models"
)

func newAnalyticsRouter(svc *mockWorker) *gin.Engine {
	r := gin.New()

	tr := api.NewTraverseHandler(svc, testLogger())
	r.POST("/traverse", tr.Traverse)
	r.GET("/components", tr.Components)

	an := api.NewAnalyticsHandler(svc, testLogger())
	r.POST("/pagerank", an.PageRank)
	r.GET("/mst", an.MST)
	r.GET("/shortest-path/:start", an.ShortestPath)

	return r
}

func TestTraverse_PassesRequest(t *testing.T) {
	t.Parallel()

	var got models.TraverseRequest
	svc := &mockWorker{
		traverseFn: func(_ context.Context, req models.TraverseRequest) (*models.TraverseResult, error) {
			got = req
			return &models.TraverseResult{Visited: []int{3, 4}, Complete: true}, nil
		},
	}

	w := doRequest(newAnalyticsRouter(svc), http.MethodPost, "/traverse", `{"mode":"dfs","scope":"single","start":3}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got.Mode != models.ModeDFS || got.Scope != models.ScopeSingle || got.Start == nil || *got.Start != 3 {
		t.Errorf("request = %+v", got)
	}

	var res models.TraverseResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(res.Visited) != 2 || !res.Complete {
		t.Errorf("result = %+v", res)
	}
}

func TestComponents_Response(t *testing.T) {
	t.Parallel()

	svc := &mockWorker{
		componentsFn: func(context.Context) ([][]int, error) { return [][]int{{0, 1}, {5}}, nil },
	}

	w := doRequest(newAnalyticsRouter(svc), http.MethodGet, "/components", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"components":[[0,1],[5]]}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestPageRank_Response(t *testing.T) {
	t.Parallel()

	svc := &mockWorker{
		pageRankFn: func(_ context.Context, req models.PageRankRequest) (map[int]float64, error) {
			if req.MaxIter != 5 || req.Damping != 0.9 {
				t.Errorf("request = %+v", req)
			}
			return map[int]float64{0: 0.5, 1: 0.5}, nil
		},
	}

	w := doRequest(newAnalyticsRouter(svc), http.MethodPost, "/pagerank", `{"component":[0,1],"max_iter":5,"damping":0.9}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res models.PageRankResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Ranks[0] != 0.5 || res.Ranks[1] != 0.5 {
		t.Errorf("ranks = %v", res.Ranks)
	}
}

func TestMST_NotBuilt(t *testing.T) {
	t.Parallel()

	svc := &mockWorker{
		mstFn: func(context.Context) (*models.MSTResult, error) { return nil, models.ErrNotBuilt },
	}

	w := doRequest(newAnalyticsRouter(svc), http.MethodGet, "/mst", "")

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestShortestPath_StartParam(t *testing.T) {
	t.Parallel()

	svc := &mockWorker{
		sspFn: func(_ context.Context, start int) (*models.ShortestPathResult, error) {
			return &models.ShortestPathResult{Start: start, Distances: map[int]int{start: 0}}, nil
		},
	}
	r := newAnalyticsRouter(svc)

	tests := []struct {
		path string
		want int
	}{
		{"/shortest-path/7", http.StatusOK},
		{"/shortest-path/-1", http.StatusBadRequest},
		{"/shortest-path/abc", http.StatusBadRequest},
	}

	for _, tc := range tests {
		if w := doRequest(r, http.MethodGet, tc.path, ""); w.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.path, tc.want, w.Code)
		}
	}
}
