package coordinator

import (
	"context"

	"github.com/persistorai/graphbench/client"
	"github.com/persistorai/graphbench/internal/models"
)

// WorkerClient is the worker surface the coordinator drives.
type WorkerClient interface {
	URL() string
	Load(ctx context.Context, edges []models.Edge) error
	Finalize(ctx context.Context) (*models.GraphStats, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (*models.GraphStats, error)
	Edges(ctx context.Context) ([]models.Edge, error)
	Traverse(ctx context.Context, mode models.TraverseMode, scope models.TraverseScope, start int) (*models.TraverseResult, error)
	Components(ctx context.Context) ([][]int, error)
	ComputeReport(ctx context.Context, kind models.ReportKind, start int) (*models.ReportSummary, error)
	FetchReport(ctx context.Context, kind models.ReportKind) ([]byte, error)
}

// HTTPWorker adapts the worker SDK to WorkerClient.
type HTTPWorker struct {
	c *client.Client
}

// NewHTTPWorker creates a WorkerClient for the worker at baseURL.
func NewHTTPWorker(baseURL string, opts ...client.Option) *HTTPWorker {
	return &HTTPWorker{c: client.New(baseURL, opts...)}
}

// HTTPWorkers creates one HTTPWorker per URL.
func HTTPWorkers(urls []string, opts ...client.Option) []WorkerClient {
	out := make([]WorkerClient, len(urls))
	for i, u := range urls {
		out[i] = NewHTTPWorker(u, opts...)
	}
	return out
}

func (w *HTTPWorker) URL() string { return w.c.BaseURL() }

func (w *HTTPWorker) Load(ctx context.Context, edges []models.Edge) error {
	_, err := w.c.Graph.Load(ctx, edges)
	return err
}

func (w *HTTPWorker) Finalize(ctx context.Context) (*models.GraphStats, error) {
	return w.c.Graph.Finalize(ctx)
}

func (w *HTTPWorker) Clear(ctx context.Context) error {
	return w.c.Graph.Clear(ctx)
}

func (w *HTTPWorker) Stats(ctx context.Context) (*models.GraphStats, error) {
	return w.c.Graph.Stats(ctx)
}

func (w *HTTPWorker) Edges(ctx context.Context) ([]models.Edge, error) {
	return w.c.Graph.Edges(ctx)
}

func (w *HTTPWorker) Traverse(ctx context.Context, mode models.TraverseMode, scope models.TraverseScope, start int) (*models.TraverseResult, error) {
	return w.c.Analytics.Traverse(ctx, mode, scope, start)
}

func (w *HTTPWorker) Components(ctx context.Context) ([][]int, error) {
	return w.c.Analytics.Components(ctx)
}

func (w *HTTPWorker) ComputeReport(ctx context.Context, kind models.ReportKind, start int) (*models.ReportSummary, error) {
	return w.c.Reports.Compute(ctx, kind, start)
}

func (w *HTTPWorker) FetchReport(ctx context.Context, kind models.ReportKind) ([]byte, error) {
	return w.c.Reports.Get(ctx, kind)
}
