package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/internal/generate"
	"github.com/persistorai/graphbench/internal/models"
)

func newLoadCmd() *cobra.Command {
	var finalize bool

	cmd := &cobra.Command{
		Use:   "load <edges.tsv>",
		Short: "Partition an edge list by source and load it onto the workers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open edge list: %w", err)
			}
			defer f.Close() //nolint:errcheck // read-only

			edges, err := generate.ReadEdges(f)
			if err != nil {
				return err
			}

			p, err := generate.BySource(edges, coord.Workers())
			if err != nil {
				return err
			}

			if err := coord.Distribute(cmd.Context(), p); err != nil {
				return err
			}

			if !finalize {
				return output(map[string]int{"loaded": len(edges)}, nil, nil, strconv.Itoa(len(edges)))
			}

			stats, err := coord.Finalize(cmd.Context())
			if err != nil {
				return err
			}
			return outputStats(stats)
		},
	}

	cmd.Flags().BoolVar(&finalize, "finalize", false, "Build the CSR on every worker after loading")

	return cmd
}

func newFinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize",
		Short: "Build the CSR from the pending edges on every worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := coord.Finalize(cmd.Context())
			if err != nil {
				return err
			}
			return outputStats(stats)
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop graph state and reports on every worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := coord.Clear(cmd.Context()); err != nil {
				return err
			}
			return output(map[string]bool{"cleared": true}, nil, nil, "ok")
		},
	}
}

func newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "Print every worker's built edges as a TSV edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := coord.Edges(cmd.Context())
			if err != nil {
				return err
			}

			if flagFmt == "json" {
				return formatJSON(edges)
			}
			return generate.WriteEdges(cmd.OutOrStdout(), edges)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show CSR statistics for every worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := coord.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return outputStats(stats)
		},
	}
}

func outputStats(stats []models.GraphStats) error {
	urls := workerURLs()
	rows := make([][]string, len(stats))
	total := 0

	for i, s := range stats {
		url := ""
		if i < len(urls) {
			url = urls[i]
		}
		rows[i] = []string{
			strconv.Itoa(i),
			url,
			strconv.Itoa(s.Nodes),
			strconv.Itoa(s.Edges),
			strconv.Itoa(s.PendingEdges),
			strconv.FormatBool(s.Built),
		}
		total += s.Edges
	}

	return output(stats, []string{"WORKER", "URL", "NODES", "EDGES", "PENDING", "BUILT"}, rows, strconv.Itoa(total))
}
