// Package logging builds the slog.Logger used across gallery.
//
// Records are handled by charmbracelet/log, which renders colored text on a
// terminal or JSON/logfmt for machines.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures the logger.
type Options struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string

	// Format is one of text, json, logfmt. Default: text.
	Format string

	// Writer receives log output. Default: os.Stderr.
	Writer io.Writer
}

// New creates a slog.Logger backed by a charmbracelet/log handler.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           parseLevel(opts.Level),
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       parseFormat(opts.Format),
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) log.Level {
	if s == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func parseFormat(s string) log.Formatter {
	switch strings.ToLower(s) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
