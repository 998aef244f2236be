package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/graph"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

// recordingPublisher captures published event types.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func newTestWorker(t *testing.T) (*Worker, *recordingPublisher) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	pub := &recordingPublisher{}
	reports := report.NewFileStore(t.TempDir(), "test")
	w := NewWorker(graph.NewStore(graph.WithSeed(42)), reports, pub, log, Options{ID: "test"})

	return w, pub
}

func edges(pairs ...[2]int) []models.Edge {
	out := make([]models.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = models.Edge{U: p[0], V: p[1]}
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestWorker_QueriesBeforeFinalize(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	if _, err := w.Load(ctx, edges([2]int{0, 1})); err != nil {
		t.Fatalf("Load: %v", err)
	}

	checks := map[string]func() error{
		"traverse": func() error {
			_, err := w.Traverse(ctx, models.TraverseRequest{Mode: models.ModeBFS, Scope: models.ScopeAll})
			return err
		},
		"components": func() error { _, err := w.Components(ctx); return err },
		"mst":        func() error { _, err := w.MST(ctx); return err },
		"sssp":       func() error { _, err := w.ShortestPath(ctx, 0); return err },
		"edges":      func() error { _, err := w.AllEdges(ctx); return err },
		"pagerank": func() error {
			_, err := w.PageRank(ctx, models.PageRankRequest{Component: []int{0}})
			return err
		},
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			if err := check(); !errors.Is(err, models.ErrNotBuilt) {
				t.Errorf("expected ErrNotBuilt, got %v", err)
			}
		})
	}
}

func TestWorker_ClearThenFinalizeIsEmpty(t *testing.T) {
	w, pub := newTestWorker(t)
	ctx := context.Background()

	if err := w.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	stats, err := w.Finalize(ctx)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if stats.Nodes != 0 || stats.Edges != 0 || !stats.Built {
		t.Errorf("unexpected stats %+v", stats)
	}

	tr, err := w.Traverse(ctx, models.TraverseRequest{Mode: models.ModeDFS, Scope: models.ScopeAll})
	if err != nil || len(tr.Visited) != 0 || !tr.Complete {
		t.Errorf("traverse = %+v, %v", tr, err)
	}

	comps, err := w.Components(ctx)
	if err != nil || len(comps) != 0 {
		t.Errorf("components = %v, %v", comps, err)
	}

	mst, err := w.MST(ctx)
	if err != nil || len(mst.Edges) != 0 {
		t.Errorf("mst = %+v, %v", mst, err)
	}

	all, err := w.AllEdges(ctx)
	if err != nil || len(all) != 0 {
		t.Errorf("edges = %v, %v", all, err)
	}

	got := strings.Join(pub.types(), ",")
	if got != EventGraphCleared+","+EventGraphFinalized+","+EventTraverseCompleted {
		t.Errorf("events = %s", got)
	}
}

func TestWorker_LoadFinalizeTraverse(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	if _, err := w.Load(ctx, edges([2]int{0, 1}, [2]int{1, 2})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	res, err := w.Load(ctx, edges([2]int{2, 0}, [2]int{5, 5}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Loaded != 2 || res.Pending != 4 {
		t.Errorf("load result %+v", res)
	}

	if w.Stats(ctx).PendingEdges != 4 {
		t.Errorf("pending = %d", w.Stats(ctx).PendingEdges)
	}

	if _, err := w.Finalize(ctx); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	tr, err := w.Traverse(ctx, models.TraverseRequest{Mode: models.ModeBFS, Scope: models.ScopeSingle, Start: intPtr(0)})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(tr.Visited) != 3 || !tr.Complete {
		t.Errorf("traverse = %+v", tr)
	}

	all, err := w.Traverse(ctx, models.TraverseRequest{Mode: models.ModeDFS, Scope: models.ScopeAll})
	if err != nil {
		t.Fatalf("Traverse all: %v", err)
	}
	if len(all.Visited) != 4 {
		t.Errorf("visited = %v", all.Visited)
	}

	stats := w.Stats(ctx)
	if stats.Nodes != 4 || stats.Edges != 4 || stats.PendingEdges != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestWorker_LoadRejectsNegativeIDs(t *testing.T) {
	w, _ := newTestWorker(t)

	_, err := w.Load(context.Background(), edges([2]int{-1, 2}))
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWorker_TraverseValidation(t *testing.T) {
	w, _ := newTestWorker(t)

	_, err := w.Traverse(context.Background(), models.TraverseRequest{Mode: "zigzag", Scope: models.ScopeAll})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWorker_PageRankDefaults(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	_, _ = w.Load(ctx, edges([2]int{0, 1}, [2]int{1, 0}))
	_, _ = w.Finalize(ctx)

	ranks, err := w.PageRank(ctx, models.PageRankRequest{Component: []int{0, 1}})
	if err != nil {
		t.Fatalf("PageRank: %v", err)
	}
	if len(ranks) != 2 {
		t.Errorf("ranks = %v", ranks)
	}

	_, err = w.PageRank(ctx, models.PageRankRequest{Component: []int{0}, Damping: 1.5})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWorker_Reports(t *testing.T) {
	w, pub := newTestWorker(t)
	ctx := context.Background()

	_, _ = w.Load(ctx, edges([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 2}, [2]int{7, 7}))
	_, _ = w.Finalize(ctx)

	if _, err := w.ReadReport(ctx, models.ReportMST); !errors.Is(err, models.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound before write, got %v", err)
	}

	tests := []struct {
		kind   models.ReportKind
		req    models.ReportRequest
		header string
		rows   int
	}{
		{models.ReportPageRank, models.ReportRequest{}, "node_id,component_id,pagerank", 4},
		{models.ReportMST, models.ReportRequest{}, "u,v,weight", 2},
		{models.ReportSSP, models.ReportRequest{Start: 0}, "node,distance_from_0", 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			sum, err := w.WriteReport(ctx, tc.kind, tc.req)
			if err != nil {
				t.Fatalf("WriteReport: %v", err)
			}
			if sum.Rows != tc.rows || !sum.Complete || sum.Worker != "test" {
				t.Errorf("summary = %+v", sum)
			}

			data, err := w.ReadReport(ctx, tc.kind)
			if err != nil {
				t.Fatalf("ReadReport: %v", err)
			}
			if !strings.HasPrefix(string(data), tc.header+"\n") {
				t.Errorf("report starts %q", data)
			}
		})
	}

	if err := w.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := w.ReadReport(ctx, models.ReportMST); !errors.Is(err, models.ErrReportNotFound) {
		t.Errorf("expected reports removed by Clear, got %v", err)
	}

	written := 0
	for _, e := range pub.types() {
		if e == EventReportWritten {
			written++
		}
	}
	if written != 3 {
		t.Errorf("report.written events = %d, want 3", written)
	}
}

func TestWorker_UnknownReportKind(t *testing.T) {
	w, _ := newTestWorker(t)

	if _, err := w.WriteReport(context.Background(), "bogus", models.ReportRequest{}); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWorker_NegativeIdsAreUnknownNodes(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	_, err := w.ShortestPath(ctx, -3)
	if !errors.Is(err, models.ErrUnknownNode) || !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("ShortestPath(-3) error = %v, want unknown node and invalid argument", err)
	}

	_, err = w.Traverse(ctx, models.TraverseRequest{Mode: models.ModeDFS, Scope: models.ScopeSingle, Start: intPtr(-1)})
	if !errors.Is(err, models.ErrUnknownNode) {
		t.Fatalf("Traverse(start=-1) error = %v, want unknown node", err)
	}

	_, err = w.Load(ctx, edges([2]int{0, 1}, [2]int{2, -4}))
	if !errors.Is(err, models.ErrUnknownNode) || !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("Load with negative id error = %v, want unknown node and invalid argument", err)
	}
}

func TestWorker_MSTTotalWeight(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	if _, err := w.Load(ctx, edges([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := w.Finalize(ctx); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	mst, err := w.MST(ctx)
	if err != nil {
		t.Fatalf("MST: %v", err)
	}

	var sum float64
	for _, e := range mst.Edges {
		sum += e.Weight
	}
	if len(mst.Edges) != 2 || mst.TotalWeight != sum {
		t.Errorf("MST = %d edges, total %v, want 2 edges totalling %v", len(mst.Edges), mst.TotalWeight, sum)
	}
}
