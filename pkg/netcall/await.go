package netcall

import (
	"context"
	"errors"

	"github.com/ooni/netresult/pkg/netresult"
)

// ErrBlockingInCallback is the value Await panics with when called
// with a context marked by WithCallbackContext.
var ErrBlockingInCallback = errors.New("netcall: cannot block inside a callback")

// Await enqueues rc and blocks until it delivers its Result.
//
// When ctx is done first, Await cancels rc and keeps waiting for the
// Result, which is then the cancellation failure reported by the
// transport. Await never synthesizes a Result on its own.
func Await[T any](ctx context.Context, rc *ResultCall[T]) netresult.Result[T] {
	if IsCallbackContext(ctx) {
		panic(ErrBlockingInCallback)
	}
	ch := rc.Future()
	select {
	case result := <-ch:
		return result
	case <-ctx.Done():
		rc.Cancel()
		return <-ch
	}
}

// Execute wraps call using config and awaits its Result.
func Execute[T any](ctx context.Context, config *Config, call Call[T]) netresult.Result[T] {
	return Await(ctx, NewResultCall(config, call))
}
