package glitz

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for glitz and all its sub-packages.
// By default, glitz produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by glitz:
//   - [slog.LevelDebug]: internal diagnostics (state diffing, fences, drop queue)
//   - [slog.LevelInfo]: lifecycle events (context created, pipeline built)
//   - [slog.LevelWarn]: non-fatal issues (released objects used, failed fences)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	glitz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	state.SetLogger(l)
	task.SetLogger(l)
	pipeline.SetLogger(l)
	headless.SetLogger(l)
}

// Logger returns the current logger used by glitz.
// Drivers built outside this module (and driver/jsgl) call this to share
// the same logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
