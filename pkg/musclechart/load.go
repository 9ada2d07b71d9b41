package musclechart

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
	"github.com/ukaji3/musclechart-go/pkg/musclechart/parser"
)

// Load reads the CSV file at path and validates it for mode.
// Errors are *LoadError wrapping ErrFileNotFound or ErrMalformedTable.
func Load(path string, mode Mode) (*models.Table, error) {
	if path == "" {
		return nil, newLoadError(path, ErrFileNotFound, errors.New("empty path"))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, newLoadError(path, ErrFileNotFound, unwrapPathError(err))
	}
	if info.IsDir() {
		return nil, newLoadError(path, ErrFileNotFound, errors.New("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(path, ErrFileNotFound, unwrapPathError(err))
	}
	defer f.Close()

	table, err := parser.ReadTable(f, filepath.Base(path), mode.RequiredColumns())
	if err != nil {
		return nil, newLoadError(path, ErrMalformedTable, err)
	}

	if err := checkDays(table); err != nil {
		return nil, newLoadError(path, ErrMalformedTable, err)
	}

	slog.Debug("loaded table", "path", path, "rows", table.Rows(), "columns", len(table.Columns))
	return table, nil
}

// LoadAll loads every path for mode, stopping at the first failure.
func LoadAll(paths []string, mode Mode) ([]*models.Table, error) {
	tables := make([]*models.Table, 0, len(paths))
	for _, p := range paths {
		t, err := Load(p, mode)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// checkDays enforces an integral, non-decreasing Day column.
func checkDays(t *models.Table) error {
	days, _ := t.Column(models.ColumnDay)
	for i, d := range days {
		if !parser.IsIntegral(d) {
			return &parser.CellError{
				Row:    i + 1,
				Column: models.ColumnDay,
				Value:  fmt.Sprint(d),
				Err:    errors.New("day is not an integer"),
			}
		}
		if i > 0 && d < days[i-1] {
			return &parser.CellError{
				Row:    i + 1,
				Column: models.ColumnDay,
				Value:  fmt.Sprint(d),
				Err:    fmt.Errorf("day decreases from %v", days[i-1]),
			}
		}
	}
	return nil
}

// unwrapPathError drops the *fs.PathError wrapper so the path is not
// repeated in the LoadError message.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
