package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing info and above to stdout.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo, extractors...)
}

// NewWithWriter creates a JSON logger writing to w at the given minimum level.
func NewWithWriter(w io.Writer, level slog.Leveler, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(WithExtractors(h, extractors...))
}
