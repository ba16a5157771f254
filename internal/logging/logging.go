// Package logging builds the process logger. Log records go to stderr so
// they never mix with the report the CLI writes to stdout.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Format selects the slog handler encoding.
type Format string

const (
	// FormatText emits human-readable records for interactive use.
	FormatText Format = "text"
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
)

// New builds a logger writing to w at the given level. Every record carries
// a run_id attribute unique to this invocation, so records from concurrent
// or repeated runs can be told apart once aggregated.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}

// ParseLevel maps a configuration string to a slog level. Unknown values
// fall back to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
