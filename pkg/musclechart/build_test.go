package musclechart

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

func newTable(source string, cols ...models.Column) *models.Table {
	return &models.Table{Source: source, Columns: cols}
}

func muscleTable(source string) *models.Table {
	return newTable(source,
		models.Column{Name: "Day", Values: []float64{0, 1, 2}},
		models.Column{Name: "Muscle Mass", Values: []float64{5.82, 5.82, 5.81}},
	)
}

func hormoneTable(source string) *models.Table {
	t := muscleTable(source)
	t.Columns = append(t.Columns,
		models.Column{Name: "Anabolic Hormone", Values: []float64{50, 50, 81.47}},
		models.Column{Name: "Catabolic Hormone", Values: []float64{52, 52, 75.48}},
	)
	return t
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildSingleSeries(t *testing.T) {
	spec, err := Build(ModeSingleSeries, []*models.Table{muscleTable("a.csv")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(spec.Subplots) != 1 {
		t.Fatalf("Expected 1 subplot, got %d", len(spec.Subplots))
	}
	sp := spec.Subplots[0]
	if len(sp.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(sp.Series))
	}
	s := sp.Series[0]
	if !equalFloats(s.Y, []float64{5.82, 5.82, 5.81}) {
		t.Errorf("Unexpected y values: %v", s.Y)
	}
	if !equalFloats(s.X, []float64{0, 1, 2}) {
		t.Errorf("Unexpected x values: %v", s.X)
	}
	if s.Color != "red" {
		t.Errorf("Expected red, got %q", s.Color)
	}
	if sp.Title != "Muscle Development" || sp.XLabel != "Day" || sp.YLabel != "Muscle Mass" {
		t.Errorf("Unexpected labels: %q / %q / %q", sp.Title, sp.XLabel, sp.YLabel)
	}
}

func TestBuildDualSubplot(t *testing.T) {
	spec, err := Build(ModeDualSubplot, []*models.Table{hormoneTable("a.csv")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(spec.Subplots) != 2 {
		t.Fatalf("Expected 2 subplots, got %d", len(spec.Subplots))
	}
	if len(spec.Subplots[0].Series) != 1 {
		t.Errorf("Expected 1 series on top, got %d", len(spec.Subplots[0].Series))
	}

	bottom := spec.Subplots[1]
	if len(bottom.Series) != 2 {
		t.Fatalf("Expected 2 series on bottom, got %d", len(bottom.Series))
	}
	if !bottom.Legend {
		t.Error("Expected legend on hormone subplot")
	}
	if bottom.YLabel != "Hormone Level" {
		t.Errorf("Expected Hormone Level, got %q", bottom.YLabel)
	}

	want := []struct {
		name  string
		color string
		y     []float64
	}{
		{"Anabolic", "black", []float64{50, 50, 81.47}},
		{"Catabolic", "yellow", []float64{52, 52, 75.48}},
	}
	for i, w := range want {
		s := bottom.Series[i]
		if s.Name != w.name || s.Color != w.color {
			t.Errorf("Series %d: expected %s/%s, got %s/%s", i, w.name, w.color, s.Name, s.Color)
		}
		if !equalFloats(s.Y, w.y) {
			t.Errorf("Series %d: unexpected y values %v", i, s.Y)
		}
	}
}

func TestBuildComparison(t *testing.T) {
	a := muscleTable("run_a.csv")
	b := newTable("run_b.csv",
		models.Column{Name: "Day", Values: []float64{0, 1}},
		models.Column{Name: "Muscle Mass", Values: []float64{6.1, 6.2}},
	)

	spec, err := Build(ModeComparison, []*models.Table{a, b})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(spec.Subplots) != 1 {
		t.Fatalf("Expected 1 subplot, got %d", len(spec.Subplots))
	}
	series := spec.Subplots[0].Series
	if len(series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(series))
	}
	if !strings.Contains(series[0].Name, "run_a.csv") || !strings.Contains(series[1].Name, "run_b.csv") {
		t.Errorf("Expected series labeled by file name, got %q and %q", series[0].Name, series[1].Name)
	}
	if series[0].Color == series[1].Color {
		t.Errorf("Expected distinct colors, both %q", series[0].Color)
	}
	if !equalFloats(series[1].Y, []float64{6.1, 6.2}) {
		t.Errorf("Unexpected y values: %v", series[1].Y)
	}
	if len(spec.Sources) != 2 || spec.Sources[0] != "run_a.csv" {
		t.Errorf("Unexpected sources: %v", spec.Sources)
	}
}

func TestBuildModeMismatch(t *testing.T) {
	a := muscleTable("a.csv")
	b := muscleTable("b.csv")

	tests := []struct {
		name   string
		mode   Mode
		tables []*models.Table
	}{
		{"comparison with one table", ModeComparison, []*models.Table{a}},
		{"comparison with three tables", ModeComparison, []*models.Table{a, b, a}},
		{"single-series with two tables", ModeSingleSeries, []*models.Table{a, b}},
		{"dual-subplot with two tables", ModeDualSubplot, []*models.Table{a, b}},
		{"single-series with none", ModeSingleSeries, nil},
		{"dual-subplot without hormones", ModeDualSubplot, []*models.Table{a}},
		{"unknown mode", Mode("pie"), []*models.Table{a}},
		{"nil table", ModeSingleSeries, []*models.Table{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(tt.mode, tt.tables)
			if !errors.Is(err, ErrModeMismatch) {
				t.Fatalf("Expected ErrModeMismatch, got %v", err)
			}
			if spec != nil {
				t.Error("Expected nil spec on error")
			}
			if !strings.Contains(err.Error(), string(tt.mode)) {
				t.Errorf("Expected error to name mode %q, got %q", tt.mode, err.Error())
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if got, err := ParseMode(" Dual-Subplot "); err != nil || got != ModeDualSubplot {
		t.Errorf("ParseMode should normalize case and space, got %q, %v", got, err)
	}
	if _, err := ParseMode("scatter"); !errors.Is(err, ErrModeMismatch) {
		t.Errorf("Expected ErrModeMismatch, got %v", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{newLoadError("x.csv", ErrFileNotFound, nil), "FileNotFound"},
		{newLoadError("x.csv", ErrMalformedTable, errors.New("boom")), "MalformedTable"},
		{&ModeError{Mode: ModeComparison, Reason: "r"}, "ModeMismatch"},
		{errors.New("other"), ""},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.expected {
			t.Errorf("Kind(%v) = %q, expected %q", tt.err, got, tt.expected)
		}
	}
}
