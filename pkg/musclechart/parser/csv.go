// Package parser reads delimited measurement files into tables.
package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// ErrNoHeader indicates the input has no header row.
var ErrNoHeader = errors.New("no header row")

// ReadTable parses comma-separated data with a header row.
// Columns listed in required must be present and fully numeric; any
// other column is kept with NaN for cells that are not numbers.
func ReadTable(r io.Reader, source string, required []string) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	header = cleanHeader(header)

	idx, err := MakeHeaderIndex(header)
	if err != nil {
		return nil, err
	}
	if err := idx.Require(required); err != nil {
		return nil, err
	}

	strict := make([]bool, len(header))
	for _, c := range required {
		strict[idx[c]] = true
	}

	table := &models.Table{
		Source:  source,
		Columns: make([]models.Column, len(header)),
	}
	for i, h := range header {
		table.Columns[i].Name = h
	}

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		for col, cell := range record {
			var v float64
			if strict[col] {
				v, err = parseValue(cell)
				if err != nil {
					return nil, &CellError{Row: row, Column: header[col], Value: cell, Err: err}
				}
			} else {
				v = parseLenient(cell)
			}
			table.Columns[col].Values = append(table.Columns[col].Values, v)
		}
	}

	return table, nil
}
