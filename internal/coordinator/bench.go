package coordinator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/client"
	"github.com/persistorai/graphbench/internal/generate"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

// Generator names accepted in a Plan.
const (
	GeneratorConnected  = "connected"
	GeneratorComponents = "components"
)

// Plan describes a benchmark sweep: every worker count is run against every
// node count.
type Plan struct {
	WorkerCounts []int  `yaml:"worker_counts" json:"worker_counts"`
	NodeCounts   []int  `yaml:"node_counts" json:"node_counts"`
	AvgDegree    int    `yaml:"avg_degree" json:"avg_degree"`
	Source       int    `yaml:"source" json:"source"`
	Seed         uint64 `yaml:"seed" json:"seed"`
	Generator    string `yaml:"generator" json:"generator"`
	Components   int    `yaml:"components" json:"components"`
}

// Validate checks the plan against the number of available workers.
func (p *Plan) Validate(available int) error {
	if len(p.WorkerCounts) == 0 || len(p.NodeCounts) == 0 {
		return fmt.Errorf("%w: plan needs worker_counts and node_counts", models.ErrInvalidArgument)
	}

	for _, w := range p.WorkerCounts {
		if w < 1 || w > available {
			return fmt.Errorf("%w: worker count %d outside [1, %d]", models.ErrInvalidArgument, w, available)
		}
	}

	if p.AvgDegree < 1 {
		return fmt.Errorf("%w: avg_degree must be positive", models.ErrInvalidArgument)
	}

	switch p.Generator {
	case "", GeneratorConnected:
	case GeneratorComponents:
		if p.Components < 1 {
			return fmt.Errorf("%w: components generator needs components >= 1", models.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown generator %q", models.ErrInvalidArgument, p.Generator)
	}

	return nil
}

// Generate builds the partition for nodes across workers.
func (p *Plan) Generate(nodes, workers int, rng *rand.Rand) (generate.Partition, error) {
	if p.Generator == GeneratorComponents {
		return generate.ComponentAssigned(nodes, p.Components, p.AvgDegree, workers, rng)
	}

	return generate.Connected(nodes, p.AvgDegree, workers, rng)
}

// RoundResult holds the merged outputs and timings of one round.
type RoundResult struct {
	RunID    string
	Timing   report.Timing
	BFS      *MergedSet
	DFS      *MergedSet
	PageRank *MergedTable
	MST      *MergedTable
	SSP      *MergedTable
}

// Round loads p, finalizes and times BFS, DFS, PageRank, MST and shortest
// path from source across all workers, then clears them. Any failure aborts
// the round and clears every worker before returning.
func (c *Coordinator) Round(ctx context.Context, p generate.Partition, nodes, source int) (res *RoundResult, err error) {
	res = &RoundResult{
		RunID:  uuid.NewString(),
		Timing: report.Timing{Workers: len(c.workers), Nodes: nodes},
	}
	ctx = client.WithRequestID(ctx, res.RunID)

	log := c.log.WithFields(logrus.Fields{"run_id": res.RunID, "workers": len(c.workers), "nodes": nodes})

	defer func() {
		if err != nil {
			c.clearAfterFailure(ctx)
		}
	}()

	if err := c.Distribute(ctx, p); err != nil {
		return nil, err
	}

	if _, err := c.Finalize(ctx); err != nil {
		return nil, err
	}

	timed := func(d *time.Duration, fn func() error) error {
		start := time.Now()
		err := fn()
		*d = time.Since(start)
		return err
	}

	steps := []struct {
		name string
		d    *time.Duration
		fn   func() error
	}{
		{"bfs", &res.Timing.BFS, func() (err error) {
			res.BFS, err = c.Traverse(ctx, models.ModeBFS, models.ScopeAll, 0)
			return err
		}},
		{"dfs", &res.Timing.DFS, func() (err error) {
			res.DFS, err = c.Traverse(ctx, models.ModeDFS, models.ScopeAll, 0)
			return err
		}},
		{"pagerank", &res.Timing.PageRank, func() (err error) {
			res.PageRank, err = c.Report(ctx, models.ReportPageRank, 0)
			return err
		}},
		{"mst", &res.Timing.MST, func() (err error) {
			res.MST, err = c.Report(ctx, models.ReportMST, 0)
			return err
		}},
		{"shortest_path", &res.Timing.ShortestPath, func() (err error) {
			res.SSP, err = c.Report(ctx, models.ReportSSP, source)
			return err
		}},
	}

	for _, s := range steps {
		if err := timed(s.d, s.fn); err != nil {
			return nil, err
		}
		log.WithField("seconds", s.d.Seconds()).Infof("%s done", s.name)
	}

	if err := c.Clear(ctx); err != nil {
		return nil, err
	}

	return res, nil
}

// Benchmark runs plan on subsets of the workers. onRound, if set, is called
// after every successful round. It returns one Timing per round in run order.
func (c *Coordinator) Benchmark(ctx context.Context, plan *Plan, onRound func(*RoundResult)) ([]report.Timing, error) {
	if err := plan.Validate(len(c.workers)); err != nil {
		return nil, err
	}

	seed := plan.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	var timings []report.Timing

	for _, w := range plan.WorkerCounts {
		sub := c.subset(w)

		for _, n := range plan.NodeCounts {
			if err := ctx.Err(); err != nil {
				return timings, err
			}

			p, err := plan.Generate(n, w, rng)
			if err != nil {
				return timings, err
			}

			res, err := sub.Round(ctx, p, n, plan.Source)
			if err != nil {
				return timings, fmt.Errorf("round workers=%d nodes=%d: %w", w, n, err)
			}

			timings = append(timings, res.Timing)
			if onRound != nil {
				onRound(res)
			}
		}
	}

	return timings, nil
}
