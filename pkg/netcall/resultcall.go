package netcall

//
// Wrapping a Call[T] into a Call[netresult.Result[T]]
//

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/ooni/netresult/internal/model"
	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/pkg/errclass"
	"github.com/ooni/netresult/pkg/netresult"
)

// ErrExecuteUnsupported is the value ResultCall.Execute panics with.
var ErrExecuteUnsupported = errors.New("netcall: Execute is not supported: use Enqueue, Await or Execute")

// ResultCall is a Call delivering a netresult.Result[T] exactly once
// through Callback.OnResponse. The zero value is invalid; use NewResultCall.
type ResultCall[T any] struct {
	call      Call[T]
	config    Config
	delivered atomic.Bool
	logger    model.Logger
	started   atomic.Int64
}

var _ Call[netresult.Result[int]] = &ResultCall[int]{}

// NewResultCall wraps call. Both arguments are MANDATORY.
func NewResultCall[T any](config *Config, call Call[T]) *ResultCall[T] {
	runtimex.Assert(config != nil, "netcall: NewResultCall called with nil config")
	runtimex.PanicIfNil(call, "netcall: NewResultCall called with nil call")
	return &ResultCall[T]{
		call:   call,
		config: *config,
		logger: model.ValidLoggerOrDefault(config.Logger),
	}
}

// Enqueue implements Call. The cb.OnResponse method receives a
// synthetic 2xx Response whose Body is the Result. The cb.OnFailure
// method is never called.
func (c *ResultCall[T]) Enqueue(cb Callback[netresult.Result[T]]) {
	runtimex.PanicIfNil(cb, "netcall: Enqueue called with nil callback")
	c.started.Store(time.Now().UnixNano())
	if c.config.Observer != nil {
		c.config.Observer.CallStarted()
	}
	c.call.Enqueue(&resultCallback[T]{rc: c, user: cb})
}

// Execute implements Call by panicking with ErrExecuteUnsupported.
func (c *ResultCall[T]) Execute() (*Response[netresult.Result[T]], error) {
	panic(ErrExecuteUnsupported)
}

// Cancel implements Call.
func (c *ResultCall[T]) Cancel() {
	c.call.Cancel()
}

// IsExecuted implements Call.
func (c *ResultCall[T]) IsExecuted() bool {
	return c.call.IsExecuted()
}

// IsCanceled implements Call.
func (c *ResultCall[T]) IsCanceled() bool {
	return c.call.IsCanceled()
}

// Clone implements Call. The clone wraps a clone of the underlying call.
func (c *ResultCall[T]) Clone() Call[netresult.Result[T]] {
	return NewResultCall(&c.config, c.call.Clone())
}

// Request implements Call.
func (c *ResultCall[T]) Request() *http.Request {
	return c.call.Request()
}

// Unwrap returns the underlying call.
func (c *ResultCall[T]) Unwrap() Call[T] {
	return c.call
}

// Future enqueues the call and returns a channel that receives the Result.
func (c *ResultCall[T]) Future() <-chan netresult.Result[T] {
	ch := make(chan netresult.Result[T], 1)
	c.Enqueue(OnResult(func(ctx context.Context, result netresult.Result[T]) {
		ch <- result
	}))
	return ch
}

func (c *ResultCall[T]) describe() string {
	if req := c.call.Request(); req != nil && req.URL != nil {
		return req.Method + " " + req.URL.Redacted()
	}
	return "call"
}

// resultCallback converts the outcome of the underlying call.
type resultCallback[T any] struct {
	rc   *ResultCall[T]
	user Callback[netresult.Result[T]]
}

var _ Callback[int] = &resultCallback[int]{}

func (rcb *resultCallback[T]) OnResponse(ctx context.Context, call Call[T], resp *Response[T]) {
	result := convert(func() netresult.Result[T] {
		if resp.IsSuccessful() {
			return netresult.Success(resp.Body)
		}
		return netresult.Failure[T](errclass.Classify(&errclass.StatusError{
			StatusCode: resp.StatusCode,
			Message:    resp.Message(),
			Body:       resp.ErrorBody,
		}))
	})
	var header http.Header
	if resp != nil {
		header = resp.Header
	}
	rcb.deliver(ctx, header, result)
}

func (rcb *resultCallback[T]) OnFailure(ctx context.Context, call Call[T], err error) {
	result := convert(func() netresult.Result[T] {
		return netresult.Failure[T](errclass.Classify(err))
	})
	rcb.deliver(ctx, nil, result)
}

// convert runs fn turning a panic into a KindOther failure.
func convert[T any](fn func() netresult.Result[T]) (result netresult.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = netresult.Failure[T](errclass.Classify(&netresult.PanicError{Value: r, Stack: debug.Stack()}))
		}
	}()
	return fn()
}

func (rcb *resultCallback[T]) deliver(ctx context.Context, header http.Header, result netresult.Result[T]) {
	rc := rcb.rc
	if !rc.delivered.CompareAndSwap(false, true) {
		rc.logger.Warnf("netcall: %s: ignoring duplicate delivery of %s", rc.describe(), result)
		return
	}
	outcome := OutcomeSuccess
	if err := result.ExceptionOrNull(); err != nil {
		outcome = string(errclass.KindOf(err))
	}
	elapsed := time.Duration(time.Now().UnixNano() - rc.started.Load())
	rc.logger.Debugf("netcall: %s... %s (%s) in %s", rc.describe(), outcome, result, elapsed)
	if rc.config.Observer != nil {
		rc.config.Observer.CallDelivered(outcome, elapsed)
	}
	rcb.user.OnResponse(ctx, rc, &Response[netresult.Result[T]]{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     header,
		Body:       result,
	})
}

// OnResult returns a Callback for a ResultCall that passes the
// Result to fn.
func OnResult[T any](fn func(ctx context.Context, result netresult.Result[T])) Callback[netresult.Result[T]] {
	return &CallbackFuncs[netresult.Result[T]]{
		OnResponseFunc: func(ctx context.Context, call Call[netresult.Result[T]], resp *Response[netresult.Result[T]]) {
			fn(ctx, resp.Body)
		},
		OnFailureFunc: func(ctx context.Context, call Call[netresult.Result[T]], err error) {
			fn(ctx, netresult.Failure[T](errclass.Classify(err)))
		},
	}
}
