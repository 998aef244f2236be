package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/internal/models"
	"github.com/persistorai/graphbench/internal/report"
)

func newTraverseCmd() *cobra.Command {
	var mode string
	var start int

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Run BFS or DFS on every worker and merge the visited sets",
		Long:  "Runs from --start when it is given, otherwise from every unvisited node.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := models.ScopeAll
			if cmd.Flags().Changed("start") {
				scope = models.ScopeSingle
			}

			res, err := coord.Traverse(cmd.Context(), models.TraverseMode(mode), scope, start)
			if err != nil {
				return err
			}

			if !res.Complete {
				log.WithField("failed_tasks", res.FailedTasks).Warn("traversal incomplete")
			}

			rows := make([][]string, len(res.PerWorker))
			for i, n := range res.PerWorker {
				rows[i] = []string{strconv.Itoa(i), strconv.Itoa(n)}
			}
			rows = append(rows, []string{"merged", strconv.Itoa(len(res.Nodes))})

			return output(res, []string{"WORKER", "VISITED"}, rows, strconv.Itoa(len(res.Nodes)))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(models.ModeBFS), "Traversal mode: bfs|dfs")
	cmd.Flags().IntVar(&start, "start", 0, "Start node (whole graph if unset)")

	return cmd
}

func newComponentsCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Compute connected components across all workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := coord.Components(cmd.Context())
			if err != nil {
				return err
			}

			t := report.Components(comps)
			if out != "" {
				return writeTableFile(out, t)
			}

			if flagFmt == "json" {
				return formatJSON(comps)
			}
			return output(comps, []string{"COMPONENT", "SIZE", "HASH"}, t.Rows, fmt.Sprint(len(comps)))
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write component_id,size,hash_summary CSV to this path (- for stdout)")

	return cmd
}
