package api

import (
	"context"

	"github.com/persistorai/graphbench/internal/models"
)

// GraphService defines the build-cycle operations used by GraphHandler.
type GraphService interface {
	Load(ctx context.Context, edges []models.Edge) (*models.LoadResult, error)
	Finalize(ctx context.Context) (*models.GraphStats, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) *models.GraphStats
	AllEdges(ctx context.Context) ([]models.Edge, error)
}

// TraversalService defines traversal operations used by TraverseHandler.
type TraversalService interface {
	Traverse(ctx context.Context, req models.TraverseRequest) (*models.TraverseResult, error)
	Components(ctx context.Context) ([][]int, error)
}

// AnalyticsService defines analytics operations used by AnalyticsHandler.
type AnalyticsService interface {
	PageRank(ctx context.Context, req models.PageRankRequest) (map[int]float64, error)
	MST(ctx context.Context) (*models.MSTResult, error)
	ShortestPath(ctx context.Context, start int) (*models.ShortestPathResult, error)
}

// ReportService defines worker-local report operations used by ReportHandler.
type ReportService interface {
	WriteReport(ctx context.Context, kind models.ReportKind, req models.ReportRequest) (*models.ReportSummary, error)
	ReadReport(ctx context.Context, kind models.ReportKind) ([]byte, error)
}

// WorkerService is everything a worker exposes over HTTP.
type WorkerService interface {
	GraphService
	TraversalService
	AnalyticsService
	ReportService
}
