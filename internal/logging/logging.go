package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	SetOutput(os.Stderr)
}

// SetOutput replaces the destination of the default tint handler. Colors
// are only used when w is a terminal.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	})))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetLogger installs a caller provided logger, for hosts that already run slog.
func SetLogger(l *slog.Logger) {
	if l == nil {
		SetOutput(os.Stderr)
		return
	}
	logger.Store(l)
}

// SetLevel changes the minimum level of the default handler.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return logger.Load()
}

func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// DebugWithComponent logs at debug level tagged with the given component
func DebugWithComponent(component, msg string, args ...any) {
	Logger().With("component", component).Debug(msg, args...)
}

// InfoWithComponent logs at info level tagged with the given component
func InfoWithComponent(component, msg string, args ...any) {
	Logger().With("component", component).Info(msg, args...)
}

// WarnWithComponent logs at warn level tagged with the given component
func WarnWithComponent(component, msg string, args ...any) {
	Logger().With("component", component).Warn(msg, args...)
}

// ErrorWithComponent logs at error level tagged with the given component
func ErrorWithComponent(component, msg string, args ...any) {
	Logger().With("component", component).Error(msg, args...)
}

// Enabled reports whether records at l would be emitted.
func Enabled(l slog.Level) bool {
	return Logger().Enabled(context.Background(), l)
}
