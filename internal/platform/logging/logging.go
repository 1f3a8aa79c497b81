// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "project created",
//	    slog.String("project", name),
//	)
//
// Error logs name the operation, the project it touched, and the full error
// chain via slog.Any("error", err). Behind the Logging middleware the context
// logger already carries request_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates a configured *slog.Logger.
//
// level is parsed by slog.Level.UnmarshalText, so "debug", "INFO" and
// "warn+2" are all accepted; anything else means info. format "text" selects
// the text handler and every other value JSON. Debug output includes the
// source location. All attributes pass through the redaction in
// redact_handler.go.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops everything. Constructors use it when
// handed a nil logger.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
