package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx)
	childCtx := logger.With()

	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}

	childLogger := childCtx.Logger()
	return WithContext(ctx, childLogger)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithCompleter creates a child logger with a completer field
func WithCompleter(ctx context.Context, completer string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("completer", completer).Logger()
	return WithContext(ctx, childLogger)
}

// WithRequestID creates a child logger with a request_id field
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("request_id", requestID).Logger()
	return WithContext(ctx, childLogger)
}
