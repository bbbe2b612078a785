package netcall

import "context"

type callbackContextKey struct{}

// WithCallbackContext returns a context marking that the code using it
// runs inside a callback. Transports use it for the context they pass to
// callbacks so that the blocking path can refuse to run there.
func WithCallbackContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, callbackContextKey{}, true)
}

// IsCallbackContext returns whether ctx derives from WithCallbackContext.
func IsCallbackContext(ctx context.Context) bool {
	v, _ := ctx.Value(callbackContextKey{}).(bool)
	return v
}
