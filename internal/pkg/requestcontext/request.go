package requestcontext

import "context"

// ContextKey type for context keys to avoid collisions
type ContextKey string

// RequestIDKey is the context key for the inbound request id
const RequestIDKey ContextKey = "request_id"

// WithRequestID returns ctx carrying id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
