// Package log provides the structured logger used by unitconv.
// It wraps the default [slog.Logger] with a settable level and
// adapters for packages that expect Println/Printf style loggers.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

// DiscardHandler discards all log output.
var DiscardHandler Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Logger is satisfied by the loggers of the MQTT client.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

type logger struct {
	*slog.Logger
	with []any
}

var level = new(slog.LevelVar)

var defaultLogger = &logger{
	Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
}

// With adds args to every message logged by the default logger.
func With(args ...any) {
	defaultLogger.Logger = defaultLogger.Logger.With(args...)
	defaultLogger.with = append(defaultLogger.with, args...)
}

func DefaultLogger() Logger {
	return defaultLogger
}

// SetLogLevel sets the minimum level that will be logged.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the minimum level that will be logged.
func LogLevel() Level {
	return Level(level.Level())
}

// Enabled reports whether messages at l will be logged.
func Enabled(l Level) bool {
	return l >= LogLevel() && l < LevelDisabled
}

// SetOutput sets the output of the default logger to w, formatted as text.
func SetOutput(w io.Writer) {
	SetTextHandler(w)
}

func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func (l *logger) Println(v ...any) {
	l.Info(fmt.Sprintln(v...))
}

func (l *logger) Printf(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}

func (l *logger) Log(ctx context.Context, level Level, msg string, args ...any) {
	l.Logger.Log(ctx, slog.Level(level), msg, args...)
}

type warnLogger struct{}

// WarnLogger returns a [Logger] that logs at [LevelWarn]
func WarnLogger() Logger {
	return warnLogger{}
}
func (warnLogger) Println(v ...any)               { Warn(fmt.Sprintln(v...)) }
func (warnLogger) Printf(format string, v ...any) { Warn(fmt.Sprintf(format, v...)) }

type errorLogger struct{}

// ErrorLogger returns a [Logger] that logs at [LevelError]
func ErrorLogger() Logger {
	return errorLogger{}
}
func (errorLogger) Println(v ...any)               { defaultLogger.Error(fmt.Sprintln(v...)) }
func (errorLogger) Printf(format string, v ...any) { defaultLogger.Error(fmt.Sprintf(format, v...)) }
