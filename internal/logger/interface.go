package logger

import "context"

// Logger defines the logging interface shared by every component
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// With returns a child logger that attaches key=value to every entry
	With(key string, value interface{}) Logger
}
