package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/persistorai/graphbench/internal/report"
)

// captureStdout redirects os.Stdout while fn runs and returns what was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestFormatTable(t *testing.T) {
	out := captureStdout(t, func() {
		formatTable([]string{"WORKER", "EDGES"}, [][]string{{"0", "12345"}, {"1", "7"}})
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if lines[0] != "WORKER  EDGES" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "------  -----" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "0       12345" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestOutputFormats(t *testing.T) {
	resetFlags(t)
	v := map[string]int{"loaded": 3}

	flagFmt = "quiet"
	if out := captureStdout(t, func() { _ = output(v, nil, nil, "3") }); out != "3\n" {
		t.Errorf("quiet = %q", out)
	}

	flagFmt = "table"
	if out := captureStdout(t, func() { _ = output(v, nil, nil, "3") }); !strings.Contains(out, `"loaded": 3`) {
		t.Errorf("table without headers should fall back to json, got %q", out)
	}

	flagFmt = "yaml"
	if err := output(v, nil, nil, "3"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mst.csv")
	tbl := &report.Table{Header: []string{"u", "v", "weight"}, Rows: [][]string{{"0", "1", "0.5"}}}

	if err := writeTableFile(path, tbl); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "u,v,weight\n0,1,0.5\n" {
		t.Errorf("file = %q", got)
	}
}
