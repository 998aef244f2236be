package report

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/persistorai/graphbench/internal/models"
)

func TestFileStore_WriteRead(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, "8081")

	if got, want := s.Path(models.ReportMST), filepath.Join(dir, "mst_worker_8081.csv"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}

	if _, err := s.Read(models.ReportMST); !errors.Is(err, models.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	tbl := MST([]models.WeightedEdge{{U: 1, V: 2, Weight: 3.5}})
	if err := s.Write(models.ReportMST, tbl); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := s.Read(models.ReportMST)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "u,v,weight\n1,2,3.5000\n" {
		t.Errorf("unexpected content %q", data)
	}

	loaded, err := s.Load(models.ReportMST)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("Len = %d, want 1", loaded.Len())
	}
}

func TestFileStore_Remove(t *testing.T) {
	s := NewFileStore(t.TempDir(), "w")

	if err := s.Write(models.ReportSSP, ShortestPath(0, map[int]int{0: 0})); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := s.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := s.Read(models.ReportSSP); !errors.Is(err, models.ErrReportNotFound) {
		t.Errorf("expected report gone, got %v", err)
	}
}
