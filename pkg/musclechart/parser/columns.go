package parser

import (
	"fmt"
	"strings"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// HeaderIndex maps a trimmed header name to its column position.
type HeaderIndex map[string]int

// MissingColumnError reports a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// DuplicateColumnError reports a header name that appears twice.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q", e.Column)
}

// cleanHeader trims whitespace and a leading byte order mark.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// MakeHeaderIndex builds a HeaderIndex from a cleaned header row.
// Names are matched exactly; duplicates are an error.
func MakeHeaderIndex(header []string) (HeaderIndex, error) {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		if _, dup := idx[h]; dup {
			return nil, &DuplicateColumnError{Column: h}
		}
		idx[h] = i
	}
	return idx, nil
}

// Require returns an error naming the first required column not in idx.
func (idx HeaderIndex) Require(columns []string) error {
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return &MissingColumnError{Column: c}
		}
	}
	return nil
}
