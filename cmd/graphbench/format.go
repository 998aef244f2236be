package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/persistorai/graphbench/internal/report"
)

func formatJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

func formatQuiet(val string) {
	fmt.Println(val)
}

// output prints v according to --format. table falls back to JSON when
// headers is nil.
func output(v any, headers []string, rows [][]string, quietVal string) error {
	switch flagFmt {
	case "quiet":
		formatQuiet(quietVal)
		return nil
	case "table":
		if headers != nil {
			formatTable(headers, rows)
			return nil
		}
		return formatJSON(v)
	case "json":
		return formatJSON(v)
	default:
		return fmt.Errorf("unknown format %q (want json|table|quiet)", flagFmt)
	}
}

// writeTableFile writes t as CSV to path, or to stdout when path is "-".
func writeTableFile(path string, t *report.Table) error {
	if path == "-" {
		_, err := t.WriteTo(os.Stdout)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // close after flush error is checked below

	if _, err := t.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}
