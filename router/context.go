package router

import "context"

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyRoute
)

// WithRequestID returns a new context that carries a request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestIDFrom extracts the request ID from ctx.
func RequestIDFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(ctxKeyRequestID)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// withRoute records the matched route's pattern on ctx.
func withRoute(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, ctxKeyRoute, pattern)
}

// RouteFrom returns the pattern of the route that matched the request
// carrying ctx.
func RouteFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyRoute).(string)
	return s, ok && s != ""
}
