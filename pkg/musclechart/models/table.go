// Package models defines data structures for loaded tables and chart layouts.
package models

// Column names written by the simulations.
const (
	ColumnDay              = "Day"
	ColumnMuscleMass       = "Muscle Mass"
	ColumnAnabolicHormone  = "Anabolic Hormone"
	ColumnCatabolicHormone = "Catabolic Hormone"
)

// Column is a named numeric vector.
type Column struct {
	// Name is the header cell, trimmed.
	Name string `json:"name"`
	// Values holds one entry per data row. Cells that could not be
	// coerced in a column the mode does not require are NaN.
	Values []float64 `json:"values"`
}

// Table is a parsed CSV file with named numeric columns.
type Table struct {
	// Source is the file name the table was read from (no directory).
	Source string `json:"source"`
	// Columns are kept in file order.
	Columns []Column `json:"columns"`
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column returns the values of the named column and whether it exists.
func (t *Table) Column(name string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Names returns the column names in file order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
