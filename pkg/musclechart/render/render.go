// Package render turns chart specs into image, vector and workbook files.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// Engine names a rendering library.
type Engine string

const (
	// EngineGonum draws with gonum.org/v1/plot.
	EngineGonum Engine = "gonum"
	// EngineGoChart draws with github.com/wcharczuk/go-chart.
	EngineGoChart Engine = "gochart"
)

// Renderer writes a chart spec in a single output format.
type Renderer interface {
	// Format is the file extension of the output, without the dot.
	Format() string
	Render(w io.Writer, spec *models.ChartSpec) error
}

// Options configures renderer selection.
type Options struct {
	Engine Engine
	// Format is an output extension such as png, svg, pdf or xlsx.
	Format string
	// Width and Height are in inches. Zero means DefaultSize.
	Width  float64
	Height float64
}

// gonumFormats are the formats vg/draw.NewFormattedCanvas accepts.
var gonumFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

var goChartFormats = map[string]bool{"png": true, "svg": true}

// New picks a renderer for opts. The xlsx format is always served by the
// workbook backend regardless of engine.
func New(opts Options) (Renderer, error) {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		format = "png"
	}

	if format == "xlsx" {
		return &Workbook{Width: opts.Width, Height: opts.Height}, nil
	}

	switch opts.Engine {
	case EngineGonum, "":
		if !gonumFormats[format] {
			return nil, fmt.Errorf("engine %s does not support format %q", EngineGonum, format)
		}
		return &Gonum{Ext: format, Width: opts.Width, Height: opts.Height}, nil
	case EngineGoChart:
		if !goChartFormats[format] {
			return nil, fmt.Errorf("engine %s does not support format %q", EngineGoChart, format)
		}
		return &GoChart{Ext: format, Width: opts.Width, Height: opts.Height}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (must be %s or %s)", opts.Engine, EngineGonum, EngineGoChart)
	}
}

// size resolves the configured figure size for spec.
func size(spec *models.ChartSpec, width, height float64) (float64, float64) {
	dw, dh := DefaultSize(len(spec.Subplots))
	if width <= 0 {
		width = dw
	}
	if height <= 0 {
		height = dh
	}
	return width, height
}

func checkSpec(spec *models.ChartSpec) error {
	if spec == nil || len(spec.Subplots) == 0 {
		return errors.New("chart has no subplots")
	}
	for _, sp := range spec.Subplots {
		for _, s := range sp.Series {
			if len(s.X) != len(s.Y) {
				return fmt.Errorf("series %q: %d x values but %d y values", s.Name, len(s.X), len(s.Y))
			}
		}
	}
	return nil
}
