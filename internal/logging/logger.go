// Package logging is the project's structured-logging seam. Services take the
// Logger interface so tests can drop in a no-op and the entrypoint decides the
// actual sink.
package logging

import "context"

// Logger logs structured records. Variadic args are alternating keys and
// values:
//
//	log.Warn(ctx, "snapshot write failed", "dir", dir, "err", err)
type Logger interface {
	// Debug logs diagnostic detail, usually off in normal runs.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs degraded but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given keys and values on
	// every record.
	With(args ...any) Logger
}
