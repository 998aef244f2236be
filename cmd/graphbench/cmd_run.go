package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/internal/coordinator"
	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

func newRunCmd() *cobra.Command {
	var planPath, outDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark sweep and write timing_results.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(planPath, coord.Workers())
			if err != nil {
				return err
			}

			timings, err := coord.Benchmark(cmd.Context(), plan, func(res *coordinator.RoundResult) {
				if err := writeRound(outDir, res); err != nil {
					log.WithError(err).Warn("writing round reports")
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "workers=%d nodes=%d done in %s\n",
					res.Timing.Workers, res.Timing.Nodes, roundTotal(res.Timing))
			})

			// Keep whatever finished, even when a later round failed.
			if len(timings) > 0 {
				if werr := writeTableFile(filepath.Join(outDir, "timing_results.csv"), report.Timings(timings)); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}

			return output(timings, timingHeaders, timingRows(timings), strconv.Itoa(len(timings)))
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "YAML benchmark plan (default sweep if empty)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory for CSV results")

	return cmd
}

func newRoundCmd() *cobra.Command {
	var nodes, degree, source, components int
	var seed uint64
	var generator, outDir string

	cmd := &cobra.Command{
		Use:   "round",
		Short: "Generate, load and benchmark a single graph across all workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := &coordinator.Plan{
				WorkerCounts: []int{coord.Workers()},
				NodeCounts:   []int{nodes},
				AvgDegree:    degree,
				Source:       source,
				Seed:         seed,
				Generator:    generator,
				Components:   components,
			}

			var last *coordinator.RoundResult
			timings, err := coord.Benchmark(cmd.Context(), plan, func(res *coordinator.RoundResult) {
				last = res
			})
			if err != nil {
				return err
			}

			if outDir != "" {
				if err := writeRound(outDir, last); err != nil {
					return err
				}
			}

			return output(timings, timingHeaders, timingRows(timings), last.RunID)
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 100_000, "Total node count")
	cmd.Flags().IntVar(&degree, "degree", 3, "Average out-degree")
	cmd.Flags().IntVar(&source, "source", 0, "Shortest-path source node")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Generator seed (0 picks one)")
	cmd.Flags().StringVar(&generator, "generator", coordinator.GeneratorConnected, "Graph generator: connected|components")
	cmd.Flags().IntVar(&components, "components", 0, "Component count for the components generator")
	cmd.Flags().StringVar(&outDir, "out", "", "Write merged reports to this directory")

	return cmd
}

// writeRound writes the merged reports of res under dir/w<workers>_n<nodes>/.
func writeRound(dir string, res *coordinator.RoundResult) error {
	sub := filepath.Join(dir, fmt.Sprintf("w%d_n%d", res.Timing.Workers, res.Timing.Nodes))

	tables := map[models.ReportKind]*coordinator.MergedTable{
		models.ReportPageRank: res.PageRank,
		models.ReportMST:      res.MST,
		models.ReportSSP:      res.SSP,
	}
	for kind, t := range tables {
		if t == nil {
			continue
		}
		if err := writeTableFile(filepath.Join(sub, string(kind)+".csv"), t.Table); err != nil {
			return err
		}
	}
	return nil
}

var timingHeaders = []string{"WORKERS", "NODES", "BFS", "DFS", "PAGERANK", "MST", "SHORTEST_PATH"}

func timingRows(timings []report.Timing) [][]string {
	return report.Timings(timings).Rows
}

func roundTotal(t report.Timing) string {
	return (t.BFS + t.DFS + t.PageRank + t.MST + t.ShortestPath).String()
}
