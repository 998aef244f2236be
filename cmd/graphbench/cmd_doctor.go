package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphbench/client"
)

type checkResult struct {
	name   string
	ok     bool
	detail string
}

func (r checkResult) String() string {
	icon := "✅"
	if !r.ok {
		icon = "❌"
	}
	return fmt.Sprintf("%s %s: %s", icon, r.name, r.detail)
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and worker health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runDoctor(cmd.Context())

			failed := 0
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
				if !r.ok {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func runDoctor(ctx context.Context) []checkResult {
	var results []checkResult

	cfgPath, cfg, err := loadProfiles()
	switch {
	case err != nil:
		results = append(results, checkResult{"config", true, "no config file, using flags and env"})
	default:
		results = append(results, checkResult{"config", true, fmt.Sprintf("%s (%d profiles)", cfgPath, len(cfg.Profiles))})
	}

	urls := workerURLs()
	if len(urls) == 0 {
		return append(results, checkResult{"workers", false, "no worker URLs configured"})
	}
	results = append(results, checkResult{"workers", true, fmt.Sprintf("%d configured", len(urls))})

	for i, url := range urls {
		results = append(results, checkWorker(ctx, i, url))
	}

	return results
}

func checkWorker(ctx context.Context, i int, url string) checkResult {
	name := fmt.Sprintf("worker %d", i)
	c := client.New(url, client.WithTimeout(5*time.Second))

	start := time.Now()
	health, err := c.Health(ctx)
	if err != nil {
		return checkResult{name, false, fmt.Sprintf("%s unreachable: %v", url, err)}
	}
	latency := time.Since(start).Round(time.Millisecond)

	ready, err := c.Ready(ctx)
	if err != nil {
		return checkResult{name, false, fmt.Sprintf("%s not ready: %v", url, err)}
	}

	return checkResult{name, true, fmt.Sprintf("%s %s v%s, %s (%s)", url, health.Status, health.Version, ready.Status, latency)}
}
