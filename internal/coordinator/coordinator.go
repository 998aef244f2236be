// Package coordinator drives a set of workers through the partitioned
// benchmark: distribute edges, finalize, dispatch queries concurrently, merge
// the per-worker answers and clear.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/graphbench/internal/generate"
	"github.com/persistorai/graphbench/internal/models"
)

// ErrWorker wraps every error caused by a single worker call; the message
// names the worker URL and the phase.
var ErrWorker = errors.New("worker failed")

// DefaultLoadBatch is the number of edges per load request.
const DefaultLoadBatch = 100_000

const clearTimeout = 30 * time.Second

// Coordinator fans operations out to a fixed, ordered set of workers.
// Worker i owns the edges whose source id is congruent to i modulo the
// worker count.
type Coordinator struct {
	workers   []WorkerClient
	log       *logrus.Logger
	tracer    trace.Tracer
	loadBatch int
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLoadBatch sets the number of edges sent per load request.
func WithLoadBatch(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.loadBatch = n
		}
	}
}

// New creates a Coordinator over workers, in partition order.
func New(workers []WorkerClient, log *logrus.Logger, opts ...Option) (*Coordinator, error) {
	if len(workers) == 0 {
		return nil, fmt.Errorf("%w: at least one worker is required", models.ErrInvalidArgument)
	}

	c := &Coordinator{
		workers:   workers,
		log:       log,
		tracer:    otel.Tracer("graphbench/coordinator"),
		loadBatch: DefaultLoadBatch,
	}
	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// Workers returns the number of workers.
func (c *Coordinator) Workers() int { return len(c.workers) }

// subset returns a coordinator over the first n workers.
func (c *Coordinator) subset(n int) *Coordinator {
	sub := *c
	sub.workers = c.workers[:n]
	return &sub
}

// fanOut runs fn once per worker concurrently and waits for all of them.
// The first failure cancels the others and is returned wrapped in ErrWorker.
func (c *Coordinator) fanOut(ctx context.Context, phase string, fn func(ctx context.Context, i int, w WorkerClient) error) error {
	ctx, span := c.tracer.Start(ctx, "coordinator."+phase,
		trace.WithAttributes(attribute.Int("workers", len(c.workers))))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)

	for i, w := range c.workers {
		g.Go(func() error {
			if err := fn(gctx, i, w); err != nil {
				return fmt.Errorf("%w: %s: %s: %w", ErrWorker, w.URL(), phase, err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		span.RecordError(err)
	}

	return err
}

// Distribute loads partition slice i into worker i in batches.
func (c *Coordinator) Distribute(ctx context.Context, p generate.Partition) error {
	if p.Workers() != len(c.workers) {
		return fmt.Errorf("%w: partition has %d slices for %d workers", models.ErrInvalidArgument, p.Workers(), len(c.workers))
	}

	return c.fanOut(ctx, "load", func(ctx context.Context, i int, w WorkerClient) error {
		edges := p[i]
		for start := 0; start < len(edges); start += c.loadBatch {
			end := min(start+c.loadBatch, len(edges))
			if err := w.Load(ctx, edges[start:end]); err != nil {
				return err
			}
		}

		c.log.WithFields(logrus.Fields{"worker": w.URL(), "edges": len(edges)}).Debug("coordinator.load")

		return nil
	})
}

// Finalize builds the CSR on every worker and returns their stats in worker order.
func (c *Coordinator) Finalize(ctx context.Context) ([]models.GraphStats, error) {
	stats := make([]models.GraphStats, len(c.workers))

	err := c.fanOut(ctx, "finalize", func(ctx context.Context, i int, w WorkerClient) error {
		s, err := w.Finalize(ctx)
		if err != nil {
			return err
		}
		stats[i] = *s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Stats returns every worker's graph stats in worker order.
func (c *Coordinator) Stats(ctx context.Context) ([]models.GraphStats, error) {
	stats := make([]models.GraphStats, len(c.workers))

	err := c.fanOut(ctx, "stats", func(ctx context.Context, i int, w WorkerClient) error {
		s, err := w.Stats(ctx)
		if err != nil {
			return err
		}
		stats[i] = *s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Edges returns every stored edge across workers, in worker order.
func (c *Coordinator) Edges(ctx context.Context) ([]models.Edge, error) {
	parts := make(generate.Partition, len(c.workers))

	err := c.fanOut(ctx, "edges", func(ctx context.Context, i int, w WorkerClient) error {
		edges, err := w.Edges(ctx)
		if err != nil {
			return err
		}
		parts[i] = edges
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parts.All(), nil
}

// Clear drops the graph and reports on every worker.
func (c *Coordinator) Clear(ctx context.Context) error {
	return c.fanOut(ctx, "clear", func(ctx context.Context, _ int, w WorkerClient) error {
		return w.Clear(ctx)
	})
}

// clearAfterFailure clears every worker once a phase has failed. It ignores
// cancellation of ctx and only logs its own errors.
func (c *Coordinator) clearAfterFailure(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), clearTimeout)
	defer cancel()

	for _, w := range c.workers {
		if err := w.Clear(ctx); err != nil {
			c.log.WithError(err).WithField("worker", w.URL()).Warn("best-effort clear failed")
		}
	}
}
