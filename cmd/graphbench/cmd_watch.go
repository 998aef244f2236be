package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/client"
)

func newWatchCmd() *cobra.Command {
	var worker int
	var since uint64

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream lifecycle events from one worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := workerURLs()
			if worker < 0 || worker >= len(urls) {
				return fmt.Errorf("worker index %d outside [0, %d)", worker, len(urls))
			}

			c := client.New(urls[worker])
			err := c.Watch(cmd.Context(), since, func(evt client.Event) error {
				if flagFmt == "json" {
					return formatJSON(evt)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  #%d  %-18s %s\n", evt.Time, evt.ID, evt.Type, evt.Data)
				return nil
			})
			if errors.Is(err, client.ErrStreamReset) {
				return fmt.Errorf("%w: restart without --since", err)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&worker, "worker", "w", 0, "Index of the worker in --workers")
	cmd.Flags().Uint64Var(&since, "since", 0, "Replay events after this id")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Print the version",
		Args:             cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
