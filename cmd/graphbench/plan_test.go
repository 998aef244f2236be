package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/persistorai/graphbench/internal/coordinator"
)

func TestDefaultPlan(t *testing.T) {
	p, err := loadPlan("", 3)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(p.WorkerCounts, []int{1, 2, 3}) {
		t.Errorf("WorkerCounts = %v", p.WorkerCounts)
	}
	if !slices.Equal(p.NodeCounts, defaultNodeCounts) {
		t.Errorf("NodeCounts = %v", p.NodeCounts)
	}
	if p.AvgDegree != 3 || p.Generator != coordinator.GeneratorConnected {
		t.Errorf("plan = %+v", p)
	}
	if err := p.Validate(3); err != nil {
		t.Errorf("default plan invalid: %v", err)
	}
}

func TestLoadPlanOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	body := `
worker_counts: [2]
node_counts: [1000, 5000]
seed: 42
generator: components
components: 10
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := loadPlan(path, 4)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(p.WorkerCounts, []int{2}) || !slices.Equal(p.NodeCounts, []int{1000, 5000}) {
		t.Errorf("counts = %v / %v", p.WorkerCounts, p.NodeCounts)
	}
	if p.AvgDegree != 3 {
		t.Errorf("AvgDegree = %d, want default 3", p.AvgDegree)
	}
	if p.Seed != 42 || p.Generator != coordinator.GeneratorComponents || p.Components != 10 {
		t.Errorf("plan = %+v", p)
	}
}

func TestLoadPlanErrors(t *testing.T) {
	if _, err := loadPlan(filepath.Join(t.TempDir(), "missing.yaml"), 1); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("worker_counts: {"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPlan(path, 1); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
