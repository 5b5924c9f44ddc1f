package glide

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by glide. By default glide produces no
// log output. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: per-gesture release and settle details
//   - [slog.LevelInfo]: resize, reconfigure and reload events
//   - [slog.LevelWarn]: dropped input and rejected configs
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
