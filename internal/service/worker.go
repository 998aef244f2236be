// Package service implements the worker: one CSR graph store driven through
// load, finalize, query and clear.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/persistorai/graphbench/internal/graph"
	"github.com/persistorai/graphbench/internal/metrics"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

// Publisher receives worker lifecycle events.
type Publisher interface {
	Publish(eventType string, data any)
}

// ReportStore persists worker-local report tables.
type ReportStore interface {
	Write(kind models.ReportKind, t *report.Table) error
	Read(kind models.ReportKind) ([]byte, error)
	Remove() error
}

// Event types published by Worker.
const (
	EventGraphLoaded       = "graph.loaded"
	EventGraphFinalized    = "graph.finalized"
	EventGraphCleared      = "graph.cleared"
	EventReportWritten     = "report.written"
	EventTraverseCompleted = "traverse.completed"
)

// Options tunes algorithm defaults.
type Options struct {
	ID        string
	PoolWidth int
	MaxIter   int
	Damping   float64
}

func (o *Options) withDefaults() {
	if o.PoolWidth < 1 {
		o.PoolWidth = graph.DefaultPoolWidth
	}
	if o.MaxIter <= 0 {
		o.MaxIter = graph.DefaultMaxIter
	}
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = graph.DefaultDamping
	}
}

// Worker owns exactly one graph store. Queries run on the CSR snapshot
// current when they start; a concurrent finalize or clear does not affect them.
type Worker struct {
	store   *graph.Store
	reports ReportStore
	events  Publisher
	log     *logrus.Logger
	tracer  trace.Tracer
	opts    Options
}

// NewWorker creates a Worker. reports and events may be nil.
func NewWorker(store *graph.Store, reports ReportStore, events Publisher, log *logrus.Logger, opts Options) *Worker {
	opts.withDefaults()

	return &Worker{
		store:   store,
		reports: reports,
		events:  events,
		log:     log,
		tracer:  otel.Tracer("graphbench/service"),
		opts:    opts,
	}
}

// ID returns the worker identifier used in report file names.
func (s *Worker) ID() string { return s.opts.ID }

func (s *Worker) publish(eventType string, data any) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}

// built returns the current CSR or models.ErrNotBuilt.
func (s *Worker) built() (*graph.CSR, error) {
	g := s.store.CSR()
	if g == nil {
		return nil, models.ErrNotBuilt
	}

	return g, nil
}

// Load appends a batch of edges to the pending build session.
func (s *Worker) Load(ctx context.Context, edges []models.Edge) (*models.LoadResult, error) {
	_, span := s.tracer.Start(ctx, "worker.Load", trace.WithAttributes(attribute.Int("edges", len(edges))))
	defer span.End()

	if err := models.ValidateEdges(edges); err != nil {
		return nil, err
	}

	s.store.AddEdges(edges)

	res := &models.LoadResult{Loaded: len(edges), Pending: s.store.Pending()}
	metrics.PendingEdges.Set(float64(res.Pending))

	s.log.WithFields(logrus.Fields{
		"loaded":  res.Loaded,
		"pending": res.Pending,
	}).Debug("graph.load")

	s.publish(EventGraphLoaded, res)

	return res, nil
}

// Finalize builds the CSR from the pending session.
func (s *Worker) Finalize(ctx context.Context) (*models.GraphStats, error) {
	_, span := s.tracer.Start(ctx, "worker.Finalize")
	defer span.End()

	start := time.Now()
	g := s.store.Build()
	elapsed := time.Since(start)

	stats := &models.GraphStats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Built: true}

	metrics.BuildDuration.Observe(elapsed.Seconds())
	metrics.NodeCount.Set(float64(stats.Nodes))
	metrics.EdgeCount.Set(float64(stats.Edges))
	metrics.PendingEdges.Set(0)
	span.SetAttributes(attribute.Int("graph.nodes", stats.Nodes), attribute.Int("graph.edges", stats.Edges))

	s.log.WithFields(logrus.Fields{
		"nodes":    stats.Nodes,
		"edges":    stats.Edges,
		"duration": elapsed.String(),
	}).Info("csr built")

	s.publish(EventGraphFinalized, stats)

	return stats, nil
}

// Clear drops pending and built state and any stored reports.
func (s *Worker) Clear(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "worker.Clear")
	defer span.End()

	s.store.Clear()

	if s.reports != nil {
		if err := s.reports.Remove(); err != nil {
			s.log.WithError(err).Warn("removing reports")
		}
	}

	metrics.NodeCount.Set(0)
	metrics.EdgeCount.Set(0)
	metrics.PendingEdges.Set(0)

	s.log.Info("graph cleared")
	s.publish(EventGraphCleared, struct{}{})

	return nil
}

// Stats describes the current CSR and pending session.
func (s *Worker) Stats(_ context.Context) *models.GraphStats {
	stats := &models.GraphStats{PendingEdges: s.store.Pending()}
	if g := s.store.CSR(); g != nil {
		stats.Nodes = g.NodeCount()
		stats.Edges = g.EdgeCount()
		stats.Built = true
	}

	return stats
}

// AllEdges materializes the CSR back into an edge list, source-major.
func (s *Worker) AllEdges(ctx context.Context) ([]models.Edge, error) {
	_, span := s.tracer.Start(ctx, "worker.AllEdges")
	defer span.End()

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	return g.Edges(), nil
}

// Traverse runs a BFS or DFS, single-source or whole-graph.
func (s *Worker) Traverse(ctx context.Context, req models.TraverseRequest) (*models.TraverseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	op := string(req.Mode)
	if req.Scope == models.ScopeAll {
		op += "_all"
	}

	ctx, span := s.tracer.Start(ctx, "worker.Traverse", trace.WithAttributes(attribute.String("traverse.op", op)))
	defer span.End()

	t := graph.NewTraverser(g, s.opts.PoolWidth)
	start := time.Now()

	var res *graph.TraversalResult
	switch {
	case req.Scope == models.ScopeAll && req.Mode == models.ModeBFS:
		res, err = t.BFSAll(ctx)
	case req.Scope == models.ScopeAll:
		res, err = t.DFSAll(ctx)
	case req.Mode == models.ModeBFS:
		res, err = t.BFS(ctx, *req.Start)
	default:
		res, err = t.DFS(ctx, *req.Start)
	}

	if err != nil {
		return nil, fmt.Errorf("traversing %s: %w", op, err)
	}

	metrics.AlgorithmDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	s.recordFailures(op, res.FailedTasks)
	span.SetAttributes(attribute.Int("traverse.visited", len(res.Visited)), attribute.Int("traverse.failed", res.FailedTasks))

	out := &models.TraverseResult{
		Visited:     res.Visited,
		FailedTasks: res.FailedTasks,
		Complete:    res.Complete(),
	}

	s.publish(EventTraverseCompleted, map[string]any{
		"op":           op,
		"visited":      len(out.Visited),
		"failed_tasks": out.FailedTasks,
	})

	return out, nil
}

func (s *Worker) recordFailures(op string, n int) {
	if n == 0 {
		return
	}

	metrics.TaskFailures.WithLabelValues(op).Add(float64(n))
	s.log.WithFields(logrus.Fields{
		"operation":    op,
		"failed_tasks": n,
	}).Warn("tasks failed, result is partial")
}
