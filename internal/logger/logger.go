package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// New creates a new Logger writing human-readable lines to stdout
func New(level string) Logger {
	return NewWithWriter(level, "text", os.Stdout)
}

// NewWithWriter creates a Logger writing to w. format is "text" or "json".
func NewWithWriter(level, format string, w io.Writer) Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}
	lvl := parseLevel(level)
	return &implLogger{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
		level:  lvl,
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &implLogger{logger: zerolog.Nop(), level: zerolog.Disabled}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) shouldLog(level zerolog.Level) bool {
	return l.level != zerolog.Disabled && level >= l.level
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.DebugLevel) {
		l.logger.Debug().Msgf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.InfoLevel) {
		l.logger.Info().Msgf(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.WarnLevel) {
		l.logger.Warn().Msgf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.ErrorLevel) {
		l.logger.Error().Msgf(msg, args...)
	}
}
