package coordinator

import (
	"bytes"
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/dsu"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

// MergedSet is the union of every worker's traversal result.
type MergedSet struct {
	Nodes       []int `json:"nodes"`
	PerWorker   []int `json:"per_worker"`
	FailedTasks int   `json:"failed_tasks"`
	Complete    bool  `json:"complete"`
}

// Traverse runs the same traversal on every worker and unions the visited
// sets. Each worker only sees its own partition, so a single-source result
// covers what is reachable through edges owned by one worker at a time.
func (c *Coordinator) Traverse(ctx context.Context, mode models.TraverseMode, scope models.TraverseScope, start int) (*MergedSet, error) {
	results := make([]*models.TraverseResult, len(c.workers))

	err := c.fanOut(ctx, "traverse."+string(mode), func(ctx context.Context, i int, w WorkerClient) error {
		res, err := w.Traverse(ctx, mode, scope, start)
		if err != nil {
			return err
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	merged := &MergedSet{PerWorker: make([]int, len(results)), Complete: true}
	seen := make(map[int]struct{})

	for i, res := range results {
		merged.PerWorker[i] = len(res.Visited)
		merged.FailedTasks += res.FailedTasks
		merged.Complete = merged.Complete && res.Complete

		for _, id := range res.Visited {
			seen[id] = struct{}{}
		}
	}

	merged.Nodes = make([]int, 0, len(seen))
	for id := range seen {
		merged.Nodes = append(merged.Nodes, id)
	}
	slices.Sort(merged.Nodes)

	c.log.WithFields(logrus.Fields{
		"mode":    mode,
		"scope":   scope,
		"visited": len(merged.Nodes),
	}).Debug("coordinator.traverse")

	return merged, nil
}

// Components collects every worker's components and joins lists that share
// a node, returning sorted global components ordered by smallest member.
func (c *Coordinator) Components(ctx context.Context) ([][]int, error) {
	lists := make([][][]int, len(c.workers))

	err := c.fanOut(ctx, "components", func(ctx context.Context, i int, w WorkerClient) error {
		comps, err := w.Components(ctx)
		if err != nil {
			return err
		}
		lists[i] = comps
		return nil
	})
	if err != nil {
		return nil, err
	}

	uf := dsu.New(0)
	for _, comps := range lists {
		for _, comp := range comps {
			if len(comp) == 0 {
				continue
			}

			uf.Add(comp[0])
			for _, id := range comp[1:] {
				uf.Union(id, comp[0])
			}
		}
	}

	return uf.Components(), nil
}

// MergedTable is a report concatenated across workers under one header.
type MergedTable struct {
	*report.Table
	FailedTasks int  `json:"failed_tasks"`
	Complete    bool `json:"complete"`
}

// Report computes kind on every worker, then fetches and concatenates the
// CSVs in worker order. start is used by the shortest-path report.
func (c *Coordinator) Report(ctx context.Context, kind models.ReportKind, start int) (*MergedTable, error) {
	summaries := make([]*models.ReportSummary, len(c.workers))

	err := c.fanOut(ctx, "report.compute."+string(kind), func(ctx context.Context, i int, w WorkerClient) error {
		s, err := w.ComputeReport(ctx, kind, start)
		if err != nil {
			return err
		}
		summaries[i] = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make([]*report.Table, len(c.workers))

	err = c.fanOut(ctx, "report.fetch."+string(kind), func(ctx context.Context, i int, w WorkerClient) error {
		data, err := w.FetchReport(ctx, kind)
		if err != nil {
			return err
		}

		t, err := report.Parse(bytes.NewReader(data))
		if err != nil {
			return err
		}
		tables[i] = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	t, err := report.Merge(tables...)
	if err != nil {
		return nil, err
	}

	merged := &MergedTable{Table: t, Complete: true}
	for _, s := range summaries {
		merged.FailedTasks += s.FailedTasks
		merged.Complete = merged.Complete && s.Complete
	}

	return merged, nil
}
