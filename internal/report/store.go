package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/persistorai/graphbench/internal/models"
)

// FileStore keeps one CSV file per report kind for a single worker.
type FileStore struct {
	dir    string
	worker string
}

// NewFileStore returns a store writing <dir>/<kind>_worker_<worker>.csv.
func NewFileStore(dir, worker string) *FileStore {
	return &FileStore{dir: dir, worker: worker}
}

// Path returns the file path for kind.
func (s *FileStore) Path(kind models.ReportKind) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_worker_%s.csv", kind, s.worker))
}

// Write replaces the stored report for kind. The file is written to a temp
// name first and renamed so readers never see a partial table.
func (s *FileStore) Write(kind models.ReportKind, t *Table) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	path := s.Path(kind)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp report: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	if _, err := t.WriteTo(tmp); err != nil {
		tmp.Close() //nolint:errcheck,gosec // already failing
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp report: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publishing report: %w", err)
	}

	return nil
}

// Read returns the raw CSV for kind, or models.ErrReportNotFound.
func (s *FileStore) Read(kind models.ReportKind) ([]byte, error) {
	data, err := os.ReadFile(s.Path(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", kind, models.ErrReportNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s report: %w", kind, err)
	}

	return data, nil
}

// Load parses the stored report for kind.
func (s *FileStore) Load(kind models.ReportKind) (*Table, error) {
	data, err := s.Read(kind)
	if err != nil {
		return nil, err
	}

	return Parse(bytes.NewReader(data))
}

// Remove deletes every stored report. Missing files are ignored.
func (s *FileStore) Remove() error {
	var errs []error
	for _, kind := range []models.ReportKind{models.ReportPageRank, models.ReportMST, models.ReportSSP} {
		if err := os.Remove(s.Path(kind)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
