// Package logging defines the structured-logging interface used across the
// project. The only implementation wraps log/slog, but callers depend on
// the interface so the backend can be swapped.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// alternating key-value pairs:
//
//	log.Info(ctx, "starting server", "addr", addr)
type Logger interface {
	// Debug logs fine-grained diagnostics, normally suppressed.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs
	// on every record.
	With(args ...any) Logger
}
