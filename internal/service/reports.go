package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

var errNoReportStore = errors.New("report store not configured")

// WriteReport computes the report of the given kind and stores it as the
// worker-local CSV, replacing any previous one.
func (s *Worker) WriteReport(ctx context.Context, kind models.ReportKind, req models.ReportRequest) (*models.ReportSummary, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown report kind %q", models.ErrInvalidArgument, kind)
	}

	if s.reports == nil {
		return nil, errNoReportStore
	}

	ctx, span := s.tracer.Start(ctx, "worker.WriteReport", trace.WithAttributes(attribute.String("report.kind", string(kind))))
	defer span.End()

	var (
		tbl    *report.Table
		failed int
		err    error
	)

	switch kind {
	case models.ReportPageRank:
		tbl, failed, err = s.pageRankTable(ctx)
	case models.ReportMST:
		var res *models.MSTResult
		if res, err = s.MST(ctx); err == nil {
			tbl = report.MST(res.Edges)
		}
	case models.ReportSSP:
		if req.Start < 0 {
			return nil, fmt.Errorf("%w: start must be non-negative", models.ErrInvalidArgument)
		}
		var res *models.ShortestPathResult
		if res, err = s.ShortestPath(ctx, req.Start); err == nil {
			tbl = report.ShortestPath(req.Start, res.Distances)
		}
	}

	if err != nil {
		return nil, err
	}

	if err := s.reports.Write(kind, tbl); err != nil {
		s.log.WithError(err).WithField("kind", kind).Error("writing report")
		return nil, fmt.Errorf("writing %s report: %w", kind, err)
	}

	summary := &models.ReportSummary{
		Kind:        kind,
		Worker:      s.opts.ID,
		Rows:        tbl.Len(),
		FailedTasks: failed,
		Complete:    failed == 0,
	}

	s.log.WithFields(logrus.Fields{
		"kind": kind,
		"rows": summary.Rows,
	}).Info("report written")

	s.publish(EventReportWritten, summary)

	return summary, nil
}

// pageRankTable ranks every component concurrently, one task per component.
func (s *Worker) pageRankTable(ctx context.Context) (*report.Table, int, error) {
	comps, err := s.Components(ctx)
	if err != nil {
		return nil, 0, err
	}

	g, err := s.built()
	if err != nil {
		return nil, 0, err
	}

	ranks := make([]map[int]float64, len(comps))
	var failures atomic.Int64

	var eg errgroup.Group
	eg.SetLimit(max(1, min(len(comps), s.opts.PoolWidth)))

	for cid, comp := range comps {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("pagerank component %d panicked: %v", cid, r)
				}
				if err != nil {
					failures.Add(1)
					s.log.WithError(err).WithField("component_id", cid).Warn("pagerank task failed")
				}
			}()

			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := g.PageRank(comp, s.opts.MaxIter, s.opts.Damping)
			if err != nil {
				return err
			}
			ranks[cid] = r

			return nil
		})
	}
	_ = eg.Wait() // failures are counted per task

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	failed := int(failures.Load())
	s.recordFailures("pagerank", failed)

	return report.PageRank(ranks), failed, nil
}

// ReadReport returns the stored CSV for kind.
func (s *Worker) ReadReport(_ context.Context, kind models.ReportKind) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown report kind %q", models.ErrInvalidArgument, kind)
	}

	if s.reports == nil {
		return nil, errNoReportStore
	}

	return s.reports.Read(kind)
}
