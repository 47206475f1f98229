// Package logging defines the logging surface the server components depend
// on, kept deliberately small so handlers and services never talk to a
// concrete logging backend.
package logging

import "context"

// Logger carries the two levels this server actually emits. Variadic args
// are key-value pairs:
//
//	log.Info(ctx, "Starting HTTP server", "address", addr)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
