package logger

import "log/slog"

// NewNope discards everything; tests and optional loggers use it.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
