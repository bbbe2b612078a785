package endpoint

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/ooni/netresult/pkg/netcall"
)

// failedCall is a netcall.Call reporting an error that occurred
// before the request could be created.
type failedCall[T any] struct {
	canceled atomic.Bool
	ctx      context.Context
	err      error
	executed atomic.Bool
}

var _ netcall.Call[int] = &failedCall[int]{}

func (fc *failedCall[T]) Enqueue(cb netcall.Callback[T]) {
	fc.executed.Store(true)
	cb.OnFailure(netcall.WithCallbackContext(context.WithoutCancel(fc.ctx)), fc, fc.err)
}

func (fc *failedCall[T]) Execute() (*netcall.Response[T], error) {
	fc.executed.Store(true)
	return nil, fc.err
}

func (fc *failedCall[T]) Cancel() {
	fc.canceled.Store(true)
}

func (fc *failedCall[T]) IsExecuted() bool {
	return fc.executed.Load()
}

func (fc *failedCall[T]) IsCanceled() bool {
	return fc.canceled.Load()
}

func (fc *failedCall[T]) Clone() netcall.Call[T] {
	return &failedCall[T]{ctx: fc.ctx, err: fc.err}
}

func (fc *failedCall[T]) Request() *http.Request {
	return nil
}
