package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

func singleSpec() *models.ChartSpec {
	return &models.ChartSpec{
		Title:   "Muscle Development",
		Sources: []string{"a.csv"},
		Subplots: []models.Subplot{{
			Title:  "Muscle Development",
			XLabel: "Day",
			YLabel: "Muscle Mass",
			Grid:   true,
			Series: []models.Series{
				{Name: "Muscle Mass", X: []float64{0, 1, 2, 3}, Y: []float64{5.82, 5.82, 5.81, 5.85}, Color: "red"},
			},
		}},
	}
}

func dualSpec() *models.ChartSpec {
	spec := singleSpec()
	spec.Subplots = append(spec.Subplots, models.Subplot{
		Title:  "Hormones",
		XLabel: "Day",
		YLabel: "Hormone Level",
		Legend: true,
		Grid:   true,
		Series: []models.Series{
			{Name: "Anabolic", X: []float64{0, 1, 2, 3}, Y: []float64{50, 50, 81.47, 75.95}, Color: "black"},
			{Name: "Catabolic", X: []float64{0, 1, 2, 3}, Y: []float64{52, 52, 75.48, 69.42}, Color: "yellow"},
		},
	})
	return spec
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestNew(t *testing.T) {
	tests := []struct {
		opts    Options
		want    string
		wantErr bool
	}{
		{Options{}, "*render.Gonum", false},
		{Options{Engine: EngineGonum, Format: "svg"}, "*render.Gonum", false},
		{Options{Engine: EngineGonum, Format: ".PDF"}, "*render.Gonum", false},
		{Options{Engine: EngineGoChart, Format: "png"}, "*render.GoChart", false},
		{Options{Engine: EngineGoChart, Format: "xlsx"}, "*render.Workbook", false},
		{Options{Format: "xlsx"}, "*render.Workbook", false},
		{Options{Engine: EngineGoChart, Format: "pdf"}, "", true},
		{Options{Engine: EngineGonum, Format: "bmp"}, "", true},
		{Options{Engine: "matplotlib"}, "", true},
	}

	for _, tt := range tests {
		r, err := New(tt.opts)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if got := typeName(r); got != tt.want {
			t.Errorf("New(%+v) = %s, expected %s", tt.opts, got, tt.want)
		}
	}
}

func typeName(r Renderer) string {
	switch r.(type) {
	case *Gonum:
		return "*render.Gonum"
	case *GoChart:
		return "*render.GoChart"
	case *Workbook:
		return "*render.Workbook"
	}
	return "unknown"
}

func TestRenderRejectsBadSpec(t *testing.T) {
	bad := singleSpec()
	bad.Subplots[0].Series[0].Y = []float64{1}

	renderers := []Renderer{
		&Gonum{Ext: "png"},
		&GoChart{Ext: "png"},
		&Workbook{},
	}
	for _, r := range renderers {
		var buf bytes.Buffer
		if err := r.Render(&buf, &models.ChartSpec{}); err == nil {
			t.Errorf("%T: expected error for empty spec", r)
		}
		if err := r.Render(&buf, bad); err == nil || !strings.Contains(err.Error(), "Muscle Mass") {
			t.Errorf("%T: expected length mismatch error, got %v", r, err)
		}
	}
}

func TestSize(t *testing.T) {
	w, h := size(singleSpec(), 0, 0)
	if w != 10 || h != 5 {
		t.Errorf("Expected 10x5, got %vx%v", w, h)
	}
	w, h = size(dualSpec(), 0, 0)
	if w != 10 || h != 8 {
		t.Errorf("Expected 10x8, got %vx%v", w, h)
	}
	w, h = size(dualSpec(), 6, 3)
	if w != 6 || h != 3 {
		t.Errorf("Expected 6x3, got %vx%v", w, h)
	}
	if px := InchesToPixels(10); px != 960 {
		t.Errorf("Expected 960 pixels, got %d", px)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		hex     string
		wantErr bool
	}{
		{"red", "FF0000", false},
		{"Blue", "0000FF", false},
		{"yellow", "FFFF00", false},
		{"#1a2B3c", "1A2B3C", false},
		{"chartreuse", "", true},
		{"#12", "", true},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && hexColor(c) != tt.hex {
			t.Errorf("ParseColor(%q) = %s, expected %s", tt.input, hexColor(c), tt.hex)
		}
	}
	if hexColor(colorOrBlack("nope")) != "000000" {
		t.Error("Expected black fallback")
	}
}
