package generate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/persistorai/graphbench/internal/models"
)

// WriteEdges writes edges as tab-separated "source<TAB>target" lines.
func WriteEdges(w io.Writer, edges []models.Edge) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	for _, e := range edges {
		if err := cw.Write([]string{strconv.Itoa(e.U), strconv.Itoa(e.V)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadEdges parses the format written by WriteEdges. Lines starting with '#' are skipped.
func ReadEdges(r io.Reader) ([]models.Edge, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 2

	var edges []models.Edge
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return edges, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading edge list: %w", err)
		}

		u, errU := strconv.Atoi(rec[0])
		v, errV := strconv.Atoi(rec[1])
		if err := errors.Join(errU, errV); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("edge list line %d: %w", line, err)
		}

		edges = append(edges, models.Edge{U: u, V: v})
	}
}
