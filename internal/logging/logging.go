// Package logging holds the logger conventions shared by bytestr packages.
//
// Loggers are always injected through a component's Config, never taken
// from slog.Default. A component scopes its logger once, in its
// constructor, with logger.With("component", name).
//
// The string primitives in package bytestr never log. Only components that
// own a lifecycle, such as the batch runner, log, and only at its
// boundaries: never per subject and never inside a scan loop.
package logging

import (
	"context"
	"log/slog"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns logger, or a discard logger when logger is nil:
//
//	func New(cfg Config) *Runner {
//	    return &Runner{logger: logging.Default(cfg.Logger).With("component", "batch")}
//	}
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}
