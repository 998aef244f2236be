package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/internal/coordinator"
	"github.com/persistorai/graphbench/internal/generate"
	"github.com/persistorai/graphbench/internal/models"
)

func newGenerateCmd() *cobra.Command {
	var nodes, degree, workers, components int
	var seed uint64
	var generator, outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a partitioned random graph as worker_<i>.tsv edge lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := &coordinator.Plan{
				WorkerCounts: []int{workers},
				NodeCounts:   []int{nodes},
				AvgDegree:    degree,
				Generator:    generator,
				Components:   components,
			}
			if err := plan.Validate(workers); err != nil {
				return err
			}

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			p, err := plan.Generate(nodes, workers, rand.New(rand.NewPCG(seed, seed>>1|1)))
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			paths := make([]string, len(p))
			rows := make([][]string, len(p))
			for i, edges := range p {
				paths[i] = filepath.Join(outDir, fmt.Sprintf("worker_%d.tsv", i))
				if err := writeEdgeFile(paths[i], edges); err != nil {
					return err
				}
				rows[i] = []string{fmt.Sprint(i), fmt.Sprint(len(edges)), paths[i]}
			}

			log.WithField("seed", seed).Debug("generated partition")

			return output(map[string]any{"seed": seed, "files": paths}, []string{"WORKER", "EDGES", "FILE"}, rows, fmt.Sprint(p.EdgeCount()))
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 100_000, "Total node count")
	cmd.Flags().IntVar(&degree, "degree", 3, "Average out-degree")
	cmd.Flags().IntVarP(&workers, "partitions", "p", 1, "Number of partitions")
	cmd.Flags().IntVar(&components, "components", 0, "Component count for the components generator")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Generator seed (0 picks one)")
	cmd.Flags().StringVar(&generator, "generator", coordinator.GeneratorConnected, "Graph generator: connected|components")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")

	return cmd
}

func writeEdgeFile(path string, edges []models.Edge) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // close after write error is checked below

	if err := generate.WriteEdges(f, edges); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}
