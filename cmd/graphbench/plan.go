package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/graphbench/internal/coordinator"
)

// defaultNodeCounts is the sweep used when no plan file is given.
var defaultNodeCounts = []int{100_000, 200_000, 500_000, 1_000_000}

// loadPlan reads a YAML benchmark plan. Missing fields take the defaults of
// the built-in sweep over workers workers.
func loadPlan(path string, workers int) (*coordinator.Plan, error) {
	plan := defaultPlan(workers)
	if path == "" {
		return plan, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return plan, nil
}

// defaultPlan sweeps 1..workers workers over defaultNodeCounts with average degree 3.
func defaultPlan(workers int) *coordinator.Plan {
	counts := make([]int, workers)
	for i := range counts {
		counts[i] = i + 1
	}
	return &coordinator.Plan{
		WorkerCounts: counts,
		NodeCounts:   append([]int(nil), defaultNodeCounts...),
		AvgDegree:    3,
		Generator:    coordinator.GeneratorConnected,
	}
}
