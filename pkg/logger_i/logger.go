package logger_i

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/tutoragent/NotesAPI/internal/config"
)

// Logger is a thin slog wrapper. Every record carries the owning component,
// and request-scoped fields (traceId, tenant) are layered on with With.
type Logger struct {
	inner *slog.Logger
}

func Init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	var handler slog.Handler
	if config.IS_PROD {
		opts.Level = config.LOG_LEVEL_PROD
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// NewLogger returns a child logger tagged with the component name.
func NewLogger(component string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", component),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logWithSource(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logWithSource(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logWithSource(slog.LevelDebug, msg, args...)
}

func (l *Logger) logWithSource(level slog.Level, msg string, args ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	// 3 frames up: runtime.Callers, logWithSource, the leveled wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	l.inner.Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}
