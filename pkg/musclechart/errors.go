package musclechart

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input path does not resolve to a readable file.
var ErrFileNotFound = errors.New("file not found")

// ErrMalformedTable indicates the input is not a usable table for the mode.
var ErrMalformedTable = errors.New("malformed table")

// ErrModeMismatch indicates the mode and the number or shape of inputs disagree.
var ErrModeMismatch = errors.New("mode mismatch")

// LoadError reports a failure to load one input file.
type LoadError struct {
	Path string
	// Kind is ErrFileNotFound or ErrMalformedTable.
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ModeError reports a mode that cannot be applied to the given inputs.
type ModeError struct {
	Mode   Mode
	Reason string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%v: mode %q: %s", ErrModeMismatch, e.Mode, e.Reason)
}

func (e *ModeError) Unwrap() error {
	return ErrModeMismatch
}

// Kind returns the taxonomy name of err for user-facing reports,
// or an empty string if err is outside the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return "FileNotFound"
	case errors.Is(err, ErrMalformedTable):
		return "MalformedTable"
	case errors.Is(err, ErrModeMismatch):
		return "ModeMismatch"
	}
	return ""
}

func newLoadError(path string, kind, err error) *LoadError {
	return &LoadError{Path: path, Kind: kind, Err: err}
}
