// Package logging builds the service's slog logger and carries request
// scoped loggers through context.Context.
//
// Services log failures as
//
//	logger.ErrorContext(ctx, "failed to fetch goal",
//	    slog.String("operation", "GetGoal"),
//	    slog.Int64("goal_id", id),
//	    slog.Any("error", err),
//	)
//
// and handlers use FromContext, whose logger already carries request_id,
// correlation_id and, behind authentication, user_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. format "text" selects the text
// handler and anything else JSON. level is one of debug, info, warn or error
// (default info); debug also records source locations. Credentials are
// redacted from every record.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns ctx with its logger extended by args, so everything logged
// further down the request carries them.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
