package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// GoChart renders with github.com/wcharczuk/go-chart. The library draws one
// set of axes per chart, so stacked subplots are rendered separately and
// composed into a single PNG. SVG output is limited to one subplot.
type GoChart struct {
	Ext string
	// Width and Height are in inches.
	Width  float64
	Height float64
}

// Format implements Renderer.
func (g *GoChart) Format() string { return g.Ext }

// Render implements Renderer.
func (g *GoChart) Render(w io.Writer, spec *models.ChartSpec) error {
	if err := checkSpec(spec); err != nil {
		return err
	}

	width, height := size(spec, g.Width, g.Height)
	pw := InchesToPixels(width)
	ph := InchesToPixels(height) / len(spec.Subplots)

	if g.Ext == "svg" {
		if len(spec.Subplots) > 1 {
			return fmt.Errorf("engine %s cannot stack %d subplots in svg", EngineGoChart, len(spec.Subplots))
		}
		ch := goChart(spec.Subplots[0], pw, ph)
		return ch.Render(chart.SVG, w)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, pw, ph*len(spec.Subplots)))
	for i, sp := range spec.Subplots {
		ch := goChart(sp, pw, ph)

		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("subplot %q: %w", sp.Title, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("subplot %q: %w", sp.Title, err)
		}

		r := image.Rect(0, i*ph, pw, (i+1)*ph)
		draw.Draw(canvas, r, img, img.Bounds().Min, draw.Src)
	}

	return png.Encode(w, canvas)
}

func goChart(sp models.Subplot, width, height int) *chart.Chart {
	var xs, ys [][]float64
	series := make([]chart.Series, 0, len(sp.Series))
	for _, s := range sp.Series {
		if len(s.X) == 0 {
			continue
		}
		xs = append(xs, s.X)
		ys = append(ys, s.Y)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: drawingColor(s.Color),
				StrokeWidth: 2,
			},
		})
	}
	visible := len(series)

	ch := &chart.Chart{
		Title:      sp.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: sp.XLabel},
		YAxis:      chart.YAxis{Name: sp.YLabel},
	}

	// go-chart cannot scale an axis whose data has zero width.
	xr, yr := axisRange(xs), axisRange(ys)
	if xr != nil {
		ch.XAxis.Range = xr
	}
	if yr != nil {
		ch.YAxis.Range = yr
	}

	// A chart needs at least one series, so empty data gets an invisible
	// one spanning the padded ranges.
	if visible == 0 {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{yr.Min, yr.Max},
			Style:   chart.Style{Hidden: true, StrokeColor: drawing.ColorTransparent},
		})
	}
	ch.Series = series

	if sp.Grid {
		grid := chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1}
		ch.XAxis.GridMajorStyle = grid
		ch.YAxis.GridMajorStyle = grid
	}
	if sp.Legend && visible > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch
}

// axisRange returns an explicit range when the finite values in vals span
// nothing (no values, or all equal), and nil when go-chart can derive one.
func axisRange(vals [][]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	switch {
	case lo > hi:
		return &chart.ContinuousRange{Min: 0, Max: 1}
	case lo == hi:
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	return nil
}

func drawingColor(name string) drawing.Color {
	c := colorOrBlack(name)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
