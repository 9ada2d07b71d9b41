// Package logging configures the global slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a text handler writing to w (stderr when nil).
// Debug lowers the level from Info to Debug.
func Setup(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
