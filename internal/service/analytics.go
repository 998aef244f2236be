package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/persistorai/graphbench/internal/graph"
	"github.com/persistorai/graphbench/internal/metrics"
	"github.com/persistorai/graphbench/internal/models"
)

func observe(algorithm string, start time.Time) {
	metrics.AlgorithmDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
}

// Components lists reach-based components in ascending root order.
func (s *Worker) Components(ctx context.Context) ([][]int, error) {
	_, span := s.tracer.Start(ctx, "worker.Components")
	defer span.End()

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	defer observe("components", time.Now())

	comps := g.Components()
	span.SetAttributes(attribute.Int("components", len(comps)))

	return comps, nil
}

// PageRank ranks one component. A zero MaxIter or Damping selects the worker default.
func (s *Worker) PageRank(ctx context.Context, req models.PageRankRequest) (map[int]float64, error) {
	if req.MaxIter == 0 {
		req.MaxIter = s.opts.MaxIter
	}
	if req.Damping == 0 {
		req.Damping = s.opts.Damping
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, span := s.tracer.Start(ctx, "worker.PageRank", trace.WithAttributes(
		attribute.Int("pagerank.component_size", len(req.Component)),
		attribute.Int("pagerank.max_iter", req.MaxIter),
	))
	defer span.End()

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	defer observe("pagerank", time.Now())

	return g.PageRank(req.Component, req.MaxIter, req.Damping)
}

// MST computes the minimum spanning forest over every stored edge.
func (s *Worker) MST(ctx context.Context) (*models.MSTResult, error) {
	_, span := s.tracer.Start(ctx, "worker.MST")
	defer span.End()

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	defer observe("mst", time.Now())

	edges := g.MinimumSpanningForest()
	res := &models.MSTResult{Edges: edges, TotalWeight: graph.TotalWeight(edges)}

	s.log.WithFields(logrus.Fields{
		"edges":        len(edges),
		"total_weight": res.TotalWeight,
	}).Debug("graph.mst")

	return res, nil
}

// ShortestPath computes integer distances from start to every indexed node.
func (s *Worker) ShortestPath(ctx context.Context, start int) (*models.ShortestPathResult, error) {
	if start < 0 {
		return nil, models.UnknownNode(start)
	}

	_, span := s.tracer.Start(ctx, "worker.ShortestPath", trace.WithAttributes(attribute.Int("sssp.start", start)))
	defer span.End()

	g, err := s.built()
	if err != nil {
		return nil, err
	}

	defer observe("shortest_path", time.Now())

	return &models.ShortestPathResult{Start: start, Distances: g.ShortestPath(start)}, nil
}
