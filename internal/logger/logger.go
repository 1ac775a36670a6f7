package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

const timeFormat = "2006-01-02 15:04:05"

type Config struct {
	Writer io.Writer
	Level  slog.Leveler
	Color  bool
	JSON   bool
	// Sink receives a copy of every record at or above SinkLevel.
	Sink      Poster
	SinkLevel slog.Leveler
}

type Logger struct {
	l *slog.Logger
}

func New(conf Config) *Logger {
	if conf.Writer == nil {
		conf.Writer = os.Stdout
	}

	if conf.Level == nil {
		conf.Level = slog.LevelInfo
	}

	var handler slog.Handler

	switch {
	case conf.JSON:
		handler = slog.NewJSONHandler(conf.Writer, &slog.HandlerOptions{Level: conf.Level})
	case conf.Color:
		handler = tint.NewHandler(conf.Writer, &tint.Options{
			Level:      conf.Level,
			TimeFormat: timeFormat,
		})
	default:
		handler = tint.NewHandler(conf.Writer, &tint.Options{
			Level:      conf.Level,
			TimeFormat: timeFormat,
			NoColor:    true,
		})
	}

	if conf.Sink != nil {
		handler = fanout{handler, newSinkHandler(conf.Sink, conf.SinkLevel)}
	}

	return &Logger{l: slog.New(handler)}
}

// Discard drops every record. Handy in tests.
func Discard() *Logger {
	return New(Config{Writer: io.Discard, Level: slog.LevelError + 1})
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.l.With(args...)}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogWarnf(format string, v ...any) {
	l.l.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) LogDebugf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error

	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}

	return out
}
