// Package report renders algorithm results as CSV tables and merges the
// per-worker tables into one.
package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrHeaderMismatch is returned when merging tables with different headers.
var ErrHeaderMismatch = errors.New("report headers differ")

// Table is a CSV document: one header row followed by data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// WriteTo writes the table as CSV.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	out := csv.NewWriter(cw)

	if err := out.Write(t.Header); err != nil {
		return cw.n, fmt.Errorf("writing header: %w", err)
	}

	if err := out.WriteAll(t.Rows); err != nil {
		return cw.n, fmt.Errorf("writing rows: %w", err)
	}

	return cw.n, nil
}

// Bytes renders the table as CSV.
func (t *Table) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = t.WriteTo(&buf) // bytes.Buffer writes do not fail

	return buf.Bytes()
}

// Parse reads a CSV document whose first row is the header.
func Parse(r io.Reader) (*Table, error) {
	in := csv.NewReader(r)
	in.FieldsPerRecord = -1

	records, err := in.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("parsing csv: missing header")
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Merge concatenates tables under the first table's header, keeping table
// order and the row order within each table.
func Merge(tables ...*Table) (*Table, error) {
	var merged *Table

	for i, t := range tables {
		if t == nil {
			continue
		}

		if merged == nil {
			merged = &Table{Header: slices.Clone(t.Header)}
		} else if !slices.Equal(merged.Header, t.Header) {
			return nil, fmt.Errorf("table %d: %w: %v vs %v", i, ErrHeaderMismatch, t.Header, merged.Header)
		}

		merged.Rows = append(merged.Rows, t.Rows...)
	}

	if merged == nil {
		return nil, errors.New("no tables to merge")
	}

	return merged, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
