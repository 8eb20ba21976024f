// Package log is a context wrapper around slog.Logger, following the
// convention oss.terrastruct.com/d2's lib/log uses: callers install a logger
// into a context.Context with With, and package code reads it back with
// Debug/Info/Warn, falling back to a default sink if none was installed.
package log

import (
	"context"
	"os"
	"runtime/debug"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
)

var _default = slog.Make(sloghuman.Sink(os.Stderr)).Named("default")

type loggerKey struct{}

func from(ctx context.Context) slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(slog.Logger)
	if !ok {
		_default.Warn(ctx, "missing slog.Logger in context, see log.With", slog.F("stack", string(debug.Stack())))
		return _default
	}
	return l
}

// With installs l into ctx for downstream Debug/Info/Warn calls.
func With(ctx context.Context, l slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Debug(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Warn(ctx, msg, fields...)
}
