package infiniboard

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/infiniboard/poincare"
	"github.com/gogpu/infiniboard/preview"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for infiniboard, the tiling builder and
// the preview renderer.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: tiling construction, cache hits and gestures
//   - [slog.LevelInfo]: board lifecycle (created, tiling changed, config loaded)
//   - [slog.LevelWarn]: input that makes no sense (release without press)
//
// Example:
//
//	infiniboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	poincare.SetLogger(l)
	preview.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
