package api_test

import (
	"context"

	"github.com/persistorai/graphbench/internal/models"
)

// mockWorker implements api.WorkerService; unset functions panic if called.
type mockWorker struct {
	loadFn       func(ctx context.Context, edges []models.Edge) (*models.LoadResult, error)
	finalizeFn   func(ctx context.Context) (*models.GraphStats, error)
	clearFn      func(ctx context.Context) error
	stats        models.GraphStats
	allEdgesFn   func(ctx context.Context) ([]models.Edge, error)
	traverseFn   func(ctx context.Context, req models.TraverseRequest) (*models.TraverseResult, error)
	componentsFn func(ctx context.Context) ([][]int, error)
	pageRankFn   func(ctx context.Context, req models.PageRankRequest) (map[int]float64, error)
	mstFn        func(ctx context.Context) (*models.MSTResult, error)
	sspFn        func(ctx context.Context, start int) (*models.ShortestPathResult, error)
	writeFn      func(ctx context.Context, kind models.ReportKind, req models.ReportRequest) (*models.ReportSummary, error)
	readFn       func(ctx context.Context, kind models.ReportKind) ([]byte, error)
}

func (m *mockWorker) Load(ctx context.Context, edges []models.Edge) (*models.LoadResult, error) {
	return m.loadFn(ctx, edges)
}

func (m *mockWorker) Finalize(ctx context.Context) (*models.GraphStats, error) {
	return m.finalizeFn(ctx)
}

func (m *mockWorker) Clear(ctx context.Context) error {
	return m.clearFn(ctx)
}

func (m *mockWorker) Stats(_ context.Context) *models.GraphStats {
	s := m.stats
	return &s
}

func (m *mockWorker) AllEdges(ctx context.Context) ([]models.Edge, error) {
	return m.allEdgesFn(ctx)
}

func (m *mockWorker) Traverse(ctx context.Context, req models.TraverseRequest) (*models.TraverseResult, error) {
	return m.traverseFn(ctx, req)
}

func (m *mockWorker) Components(ctx context.Context) ([][]int, error) {
	return m.componentsFn(ctx)
}

func (m *mockWorker) PageRank(ctx context.Context, req models.PageRankRequest) (map[int]float64, error) {
	return m.pageRankFn(ctx, req)
}

func (m *mockWorker) MST(ctx context.Context) (*models.MSTResult, error) {
	return m.mstFn(ctx)
}

func (m *mockWorker) ShortestPath(ctx context.Context, start int) (*models.ShortestPathResult, error) {
	return m.sspFn(ctx, start)
}

func (m *mockWorker) WriteReport(ctx context.Context, kind models.ReportKind, req models.ReportRequest) (*models.ReportSummary, error) {
	return m.writeFn(ctx, kind, req)
}

func (m *mockWorker) ReadReport(ctx context.Context, kind models.ReportKind) ([]byte, error) {
	return m.readFn(ctx, kind)
}
