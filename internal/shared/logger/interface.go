package logger

import (
	"io"
	"log/slog"
)

// Interface is the logger handed to every component. The *w variants take
// alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// slogLogger adapts *slog.Logger. Debug, Info, Warn and Error come from the
// embedded logger.
type slogLogger struct {
	*slog.Logger
}

// NewLogger wraps the process-wide logger configured by Init.
func NewLogger() Interface {
	return slogLogger{Get()}
}

// NewDiscardLogger drops every record; used by tests.
func NewDiscardLogger() Interface {
	return slogLogger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l slogLogger) With(args ...any) Interface {
	return slogLogger{l.Logger.With(args...)}
}

func (l slogLogger) Named(name string) Interface {
	return l.With("component", name)
}

func (l slogLogger) Debugw(msg string, keysAndValues ...any) { l.Logger.Debug(msg, keysAndValues...) }

func (l slogLogger) Infow(msg string, keysAndValues ...any) { l.Logger.Info(msg, keysAndValues...) }

func (l slogLogger) Warnw(msg string, keysAndValues ...any) { l.Logger.Warn(msg, keysAndValues...) }

func (l slogLogger) Errorw(msg string, keysAndValues ...any) { l.Logger.Error(msg, keysAndValues...) }
