package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestGonumRender(t *testing.T) {
	tests := []struct {
		format string
		check  func([]byte) bool
	}{
		{"png", func(b []byte) bool { return bytes.HasPrefix(b, pngMagic) }},
		{"svg", func(b []byte) bool { return strings.Contains(string(b), "<svg") }},
		{"pdf", func(b []byte) bool { return bytes.HasPrefix(b, []byte("%PDF")) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			g := &Gonum{Ext: tt.format, Width: 4, Height: 3}
			for _, spec := range []string{"single", "dual"} {
				s := singleSpec()
				if spec == "dual" {
					s = dualSpec()
				}
				var buf bytes.Buffer
				if err := g.Render(&buf, s); err != nil {
					t.Fatalf("%s: Render failed: %v", spec, err)
				}
				if !tt.check(buf.Bytes()) {
					t.Errorf("%s: output is not %s", spec, tt.format)
				}
			}
		})
	}
}

func TestGonumPlotLegend(t *testing.T) {
	spec := dualSpec()
	p, err := gonumPlot(spec.Subplots[1])
	if err != nil {
		t.Fatalf("gonumPlot failed: %v", err)
	}
	if p.Title.Text != "Hormones" {
		t.Errorf("Expected title Hormones, got %q", p.Title.Text)
	}
	if p.Y.Label.Text != "Hormone Level" {
		t.Errorf("Expected y label Hormone Level, got %q", p.Y.Label.Text)
	}
}
