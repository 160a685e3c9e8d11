package pixconv

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with conversions on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixconv and its sub-packages.
// By default, pixconv produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by pixconv:
//   - [slog.LevelDebug]: skipped conversions (zero size, odd 4:2:0
//     dimensions, unknown formats) and memory pool activity
//   - [slog.LevelWarn]: non-fatal issues in the imageio package
//
// Example:
//
//	pixconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixconv.
// Sub-packages (imageio) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logSkip reports a conversion that was skipped as a no-op.
func logSkip(reason string, dst, src Format, width, height int) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("pixconv: conversion skipped",
		"reason", reason,
		"src", src.String(),
		"dst", dst.String(),
		"width", width,
		"height", height,
	)
}
