package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// Sheet names written by the workbook backend.
const (
	ChartSheet = "Chart"
	DataSheet  = "Data"
)

// rowHeightPixels is the default Excel row height at 96 DPI.
const rowHeightPixels = 20

// Workbook writes an xlsx file holding the plotted values on a data sheet
// and one native scatter-with-lines chart per subplot on a chart sheet.
type Workbook struct {
	// Width and Height are in inches for the whole figure.
	Width  float64
	Height float64
}

// Format implements Renderer.
func (wb *Workbook) Format() string { return "xlsx" }

// Render implements Renderer.
func (wb *Workbook) Render(w io.Writer, spec *models.ChartSpec) error {
	if err := checkSpec(spec); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ChartSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(DataSheet); err != nil {
		return err
	}

	width, height := size(spec, wb.Width, wb.Height)
	pw := InchesToPixels(width)
	ph := InchesToPixels(height) / len(spec.Subplots)

	col := 1
	row := 1
	for _, sp := range spec.Subplots {
		c := &excelize.Chart{
			Type:      excelize.Scatter,
			Title:     []excelize.RichTextRun{{Text: sp.Title}},
			Dimension: excelize.ChartDimension{Width: uint(pw), Height: uint(ph)},
			Legend:    excelize.ChartLegend{Position: "none"},
			XAxis: excelize.ChartAxis{
				Title:          []excelize.RichTextRun{{Text: sp.XLabel}},
				MajorGridLines: sp.Grid,
			},
			YAxis: excelize.ChartAxis{
				Title:          []excelize.RichTextRun{{Text: sp.YLabel}},
				MajorGridLines: sp.Grid,
			},
		}
		if sp.Legend {
			c.Legend.Position = "bottom"
		}

		for _, s := range sp.Series {
			nameRef, xRef, yRef, err := writeSeries(f, col, s)
			if err != nil {
				return fmt.Errorf("series %q: %w", s.Name, err)
			}
			col += 2

			c.Series = append(c.Series, excelize.ChartSeries{
				Name:       nameRef,
				Categories: xRef,
				Values:     yRef,
				Line:       excelize.ChartLine{Width: 1.5},
				Marker:     excelize.ChartMarker{Symbol: "none"},
				Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(colorOrBlack(s.Color))}},
			})
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.AddChart(ChartSheet, cell, c); err != nil {
			return fmt.Errorf("subplot %q: %w", sp.Title, err)
		}
		row += ph/rowHeightPixels + 2
	}

	f.SetActiveSheet(0)
	_, err := f.WriteTo(w)
	return err
}

// writeSeries stores s as two columns starting at col on the data sheet
// and returns absolute references to its name, x values and y values.
func writeSeries(f *excelize.File, col int, s models.Series) (nameRef, xRef, yRef string, err error) {
	xs := make([]interface{}, 0, len(s.X)+1)
	ys := make([]interface{}, 0, len(s.Y)+1)
	xs = append(xs, s.Name+" (x)")
	ys = append(ys, s.Name)
	for i := range s.X {
		xs = append(xs, s.X[i])
		ys = append(ys, s.Y[i])
	}

	xCol, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", "", "", err
	}
	yCol, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "", "", "", err
	}

	if err := f.SetSheetCol(DataSheet, xCol+"1", &xs); err != nil {
		return "", "", "", err
	}
	if err := f.SetSheetCol(DataSheet, yCol+"1", &ys); err != nil {
		return "", "", "", err
	}

	last := len(s.X) + 1
	if last < 2 {
		last = 2
	}
	nameRef = fmt.Sprintf("%s!$%s$1", DataSheet, yCol)
	xRef = fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, xCol, xCol, last)
	yRef = fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, yCol, yCol, last)
	return nameRef, xRef, yRef, nil
}
