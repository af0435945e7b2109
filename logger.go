package mandelzoom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// The package is silent by default so the render loop never pays for log
// formatting unless the embedding program opts in with SetLogger. Renderer
// construction logs at Info, per-frame timing at Debug.

// nopHandler discards all records and reports every level disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger routes the package's log output to l. A nil l restores the
// silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use with
// SetLogger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
