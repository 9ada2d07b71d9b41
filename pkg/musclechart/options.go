// Package musclechart loads simulation result tables and builds chart layouts.
package musclechart

import (
	"fmt"
	"strings"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// Mode selects which columns are required and how the chart is laid out.
type Mode string

const (
	// ModeSingleSeries plots Day against Muscle Mass on one set of axes.
	ModeSingleSeries Mode = "single-series"
	// ModeDualSubplot adds a second subplot with both hormone levels.
	ModeDualSubplot Mode = "dual-subplot"
	// ModeComparison overlays Muscle Mass from two files.
	ModeComparison Mode = "comparison"
)

// Modes lists every supported mode in help order.
var Modes = []Mode{ModeSingleSeries, ModeDualSubplot, ModeComparison}

// ParseMode converts a command-line word into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return "", &ModeError{Mode: Mode(s), Reason: fmt.Sprintf("unknown mode (must be one of %s)", modeList())}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSingleSeries, ModeDualSubplot, ModeComparison:
		return true
	}
	return false
}

// RequiredColumns returns the columns a table must carry for m.
func (m Mode) RequiredColumns() []string {
	switch m {
	case ModeDualSubplot:
		return []string{
			models.ColumnDay,
			models.ColumnMuscleMass,
			models.ColumnAnabolicHormone,
			models.ColumnCatabolicHormone,
		}
	default:
		return []string{models.ColumnDay, models.ColumnMuscleMass}
	}
}

// TableCount returns how many input files m takes.
func (m Mode) TableCount() int {
	if m == ModeComparison {
		return 2
	}
	return 1
}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
