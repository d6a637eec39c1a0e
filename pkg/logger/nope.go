package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything. It is the default wherever
// a logger is optional.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
