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
}

// New creates a new Logger writing console-formatted entries to stderr
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level, "console")
}

// NewWithWriter creates a Logger on w. Format is "console" or "json".
func NewWithWriter(w io.Writer, level, format string) Logger {
	var out io.Writer = w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.DateTime,
			NoColor:    true,
		}
	}

	return &implLogger{
		logger: zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// parseLevel maps a configured level name to zerolog, defaulting to info
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}

func (l *implLogger) With(key string, value interface{}) Logger {
	return &implLogger{logger: l.logger.With().Interface(key, value).Logger()}
}

// NewNop returns a Logger that discards everything
func NewNop() Logger {
	return &implLogger{logger: zerolog.Nop()}
}
