// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns the per-request logger injected by middleware.Logger, so
// every line written from a handler or service carries the request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("contribution placed", "user_id", userID, "organ_id", organID)
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/donorlink/config"
)

var L *slog.Logger

func init() {
	L = slog.New(baseHandler(os.Stdout, config.AppEnv()))
	slog.SetDefault(L)
}

// baseHandler picks JSON output for production and text everywhere else.
func baseHandler(w io.Writer, env string) slog.Handler {
	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// Setup re-initialises L after config.Load and attaches the optional MongoDB
// sink when LOG_MONGO_URI is set. The returned func flushes and closes the
// sink; it is never nil.
func Setup() (func(), error) {
	handler := baseHandler(os.Stdout, config.AppEnv())
	closer := func() {}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoCollection())
		if err != nil {
			L = slog.New(handler)
			slog.SetDefault(L)
			return closer, err
		}
		handler = NewMultiHandler(handler, mh)
		closer = mh.Close
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return closer, nil
}

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or L.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
