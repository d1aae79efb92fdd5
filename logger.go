package glyphset

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false so attributes are
// never evaluated while the generator and converter run unobserved.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the process-wide logger for dataset generation and
// shard conversion.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the logger used by Generator and Converter.
// glyphset is silent until SetLogger is called; nil silences it again.
//
// Log levels used by glyphset:
//   - [slog.LevelDebug]: per-shard and per-font details
//   - [slog.LevelInfo]: stage totals (images generated, records written)
//   - [slog.LevelWarn]: skipped work (font without a glyph for a label)
//
// Example:
//
//	glyphset.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the installed logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
