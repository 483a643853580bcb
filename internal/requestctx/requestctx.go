// Package requestctx carries the per-request correlation id through the
// request context so middleware, handlers and log lines reference the
// same value.
package requestctx

import "context"

type contextKey int

const requestIDKey contextKey = iota

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the id set by the request-id middleware, or the
// empty string outside a request scope.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
