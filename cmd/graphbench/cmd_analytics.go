package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/internal/models"
)

// newReportCmd builds a command that computes a report on every worker and
// prints the merged CSV.
func newReportCmd(kind, short string, needsStart bool) *cobra.Command {
	var start int
	var out string

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := coord.Report(cmd.Context(), models.ReportKind(kind), start)
			if err != nil {
				return err
			}

			if !res.Complete {
				log.WithField("failed_tasks", res.FailedTasks).Warn("report incomplete")
			}

			switch flagFmt {
			case "quiet":
				formatQuiet(strconv.Itoa(res.Len()))
				return nil
			case "json":
				return formatJSON(res)
			}

			if out == "" {
				out = "-"
			}
			return writeTableFile(out, res.Table)
		},
	}

	if needsStart {
		cmd.Flags().IntVar(&start, "start", 0, "Source node")
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the merged CSV to this path instead of stdout")

	return cmd
}
