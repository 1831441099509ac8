package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ctxKey keeps the context logger key private to this package.
type ctxKey struct{}

// WithLogger returns a context carrying logger. A nil logger falls back
// to the package default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or the default logger
// when ctx carries none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is shorthand for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField returns a context whose logger carries one extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	child := appendField(FromContext(ctx).With(), key, value).Logger()
	return WithLogger(ctx, &child)
}

// WithFields returns a context whose logger carries every given field.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logCtx := FromContext(ctx).With()
	for key, value := range fields {
		logCtx = appendField(logCtx, key, value)
	}
	child := logCtx.Logger()
	return WithLogger(ctx, &child)
}

// appendField attaches value under key with the matching zerolog type.
// Types outside the common set fall through to reflection-based encoding.
func appendField(logCtx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return logCtx.Str(key, v)
	case int:
		return logCtx.Int(key, v)
	case int64:
		return logCtx.Int64(key, v)
	case float64:
		return logCtx.Float64(key, v)
	case bool:
		return logCtx.Bool(key, v)
	case error:
		return logCtx.AnErr(key, v)
	default:
		return logCtx.Interface(key, v)
	}
}

// WithSource tags the context logger with an input source name, such
// as "constituents" or "donations".
func WithSource(ctx context.Context, source string) context.Context {
	return WithField(ctx, "source", source)
}

// WithPath tags the context logger with a file path.
func WithPath(ctx context.Context, path string) context.Context {
	return WithField(ctx, "path", path)
}

// WithOperation tags the context logger with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}
