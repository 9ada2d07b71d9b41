package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// Gonum renders with gonum.org/v1/plot. Subplots share one canvas and are
// aligned so their axes line up.
type Gonum struct {
	Ext string
	// Width and Height are in inches.
	Width  float64
	Height float64
}

// Format implements Renderer.
func (g *Gonum) Format() string { return g.Ext }

// Render implements Renderer.
func (g *Gonum) Render(w io.Writer, spec *models.ChartSpec) error {
	if err := checkSpec(spec); err != nil {
		return err
	}

	plots := make([][]*plot.Plot, len(spec.Subplots))
	for i, sp := range spec.Subplots {
		p, err := gonumPlot(sp)
		if err != nil {
			return fmt.Errorf("subplot %q: %w", sp.Title, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	width, height := size(spec, g.Width, g.Height)
	c, err := draw.NewFormattedCanvas(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, g.Ext)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

func gonumPlot(sp models.Subplot) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = sp.Title
	p.X.Label.Text = sp.XLabel
	p.Y.Label.Text = sp.YLabel
	p.Legend.Top = true

	if sp.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, s := range sp.Series {
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i].X = s.X[i]
			xys[i].Y = s.Y[i]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = colorOrBlack(s.Color)
		line.Width = vg.Points(1.5)

		p.Add(line)
		if sp.Legend {
			p.Legend.Add(s.Name, line)
		}
	}

	return p, nil
}
