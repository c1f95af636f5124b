// Package telemetry provides structured logging for the simulator and its
// CLI, grounded in the same pretty-console slog handler pattern used across
// the rest of this codebase's ancestry.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var logger *slog.Logger

// Init installs the process-wide logger at the given level, writing to
// os.Stderr so stdout stays clean for --format json/table output.
func Init(level slog.Level) {
	logger = slog.New(&prettyHandler{w: os.Stderr, level: level, mu: &sync.Mutex{}})
	slog.SetDefault(logger)
}

// L returns the process logger, lazily initializing at info level if Init
// was never called.
func L() *slog.Logger {
	if logger == nil {
		Init(slog.LevelInfo)
	}
	return logger
}

func Infof(format string, args ...any)  { L().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { L().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { L().Error(fmt.Sprintf(format, args...)) }
func Debugf(format string, args ...any) { L().Debug(fmt.Sprintf(format, args...)) }

// ParseLevel converts a config-file/flag level name to slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// prettyHandler renders: [2026-07-31 14:03:09] WARN: message attr=val ...
// Error, warn and debug records carry an "ERROR: ", "WARN: " or "DEBUG: "
// prefix; info records carry none.
type prettyHandler struct {
	w     io.Writer
	level slog.Level
	mu    *sync.Mutex
	attrs []slog.Attr
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time.Format("2006-01-02 15:04:05")

	var prefix string
	switch {
	case r.Level >= slog.LevelError:
		prefix = "ERROR: "
	case r.Level >= slog.LevelWarn:
		prefix = "WARN: "
	case r.Level <= slog.LevelDebug:
		prefix = "DEBUG: "
	}

	var attrs string
	for _, a := range h.attrs {
		attrs += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "[%s] %s%s%s\n", ts, prefix, r.Message, attrs)
	return err
}

// WithAttrs returns a handler that prepends attrs to every subsequent
// record's attributes, per the slog.Handler contract for Logger.With.
func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next = append(next, h.attrs...)
	next = append(next, attrs...)
	return &prettyHandler{w: h.w, level: h.level, mu: h.mu, attrs: next}
}

func (h *prettyHandler) WithGroup(_ string) slog.Handler { return h }
