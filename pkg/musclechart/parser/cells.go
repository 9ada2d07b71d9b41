package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyCell indicates a required cell holds no value.
var ErrEmptyCell = errors.New("empty cell")

// CellError reports a cell that could not be used as a number.
type CellError struct {
	// Row is the 1-based data row (the header is row 0).
	Row int
	// Column is the header name of the cell.
	Column string
	// Value is the raw cell content.
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// parseValue parses a cell as a float64.
// Surrounding whitespace is ignored; an empty cell is ErrEmptyCell.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyCell
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// parseLenient parses a cell and returns NaN when it is not a number.
func parseLenient(s string) float64 {
	v, err := parseValue(s)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsIntegral reports whether v has no fractional part.
func IsIntegral(v float64) bool {
	return v == math.Trunc(v)
}
