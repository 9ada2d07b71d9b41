// Package ui prints colored status messages to the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto detects color support from the terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// ParseColorMode converts auto, always or never into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (must be auto, always, or never)", s)
}

// UI writes messages to a single stream, normally stderr.
type UI struct {
	out *termenv.Output
}

// New creates a UI writing to w (stderr when nil).
// It respects the NO_COLOR environment variable.
func New(mode ColorMode, w io.Writer) *UI {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.NewOutput(w).EnvColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	}

	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	u.print(termenv.ANSIGreen, "✓ ", format, args...)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.print(termenv.ANSIYellow, "⚠ ", format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.print(termenv.ANSIRed, "✗ ", format, args...)
}

func (u *UI) print(c termenv.ANSIColor, prefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(prefix+msg).Foreground(c))
}
