package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	apperrors "github.com/tokyo-toilet-data/internal/pkg/errors"
)

// Repository stores tables as UTF-8 CSV files with a header row
type Repository struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Repository {
	return &Repository{logger: logger}
}

// Load reads a CSV file fully into memory. Short rows are padded with
// empty strings so every record carries all header columns.
func (r *Repository) Load(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.MissingInputFile(path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header of %s: file is empty", path)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	table := domain.NewTable(header)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		rec := make(domain.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		table.Append(rec)
	}

	r.logger.Debug("Loaded CSV file",
		zap.String("path", path),
		zap.Int("rows", table.Len()))

	return table, nil
}

// Save writes a table as CSV, creating parent directories on demand
func (r *Repository) Save(path string, table *domain.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, rec := range table.Rows {
		row := make([]string, len(table.Header))
		for i, col := range table.Header {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	r.logger.Debug("Saved CSV file",
		zap.String("path", path),
		zap.Int("rows", table.Len()))

	return nil
}

// Exists reports whether a CSV file is present
func (r *Repository) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// List returns the CSV file paths directly under dir, in name order.
// A missing directory yields an empty list.
func (r *Repository) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
