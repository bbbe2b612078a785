package netcall

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// Call is a single network call producing a T.
type Call[T any] interface {
	// Enqueue starts the call asynchronously. The transport calls exactly
	// one of the callback methods once the call completes.
	Enqueue(cb Callback[T])

	// Execute runs the call synchronously.
	Execute() (*Response[T], error)

	// Cancel cancels the call. A transport that was already running the
	// call reports the cancellation through Callback.OnFailure.
	Cancel()

	// IsExecuted returns whether Enqueue or Execute has been called.
	IsExecuted() bool

	// IsCanceled returns whether Cancel has been called.
	IsCanceled() bool

	// Clone returns a new, not yet executed, call for the same request.
	Clone() Call[T]

	// Request returns the request this call sends.
	Request() *http.Request
}

// Callback receives the outcome of a Call.
type Callback[T any] interface {
	// OnResponse is called when the server answered, regardless of the status code.
	OnResponse(ctx context.Context, call Call[T], resp *Response[T])

	// OnFailure is called when the call could not complete.
	OnFailure(ctx context.Context, call Call[T], err error)
}

// Response is the response to a Call.
type Response[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the HTTP status line (e.g. "200 OK").
	Status string

	// Header contains the response headers.
	Header http.Header

	// Body is the decoded body. It is only meaningful if IsSuccessful.
	Body T

	// ErrorBody is the raw body when not IsSuccessful.
	ErrorBody []byte
}

// IsSuccessful returns whether the status code is 2xx.
func (r *Response[T]) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Message returns the reason phrase of the status line.
func (r *Response[T]) Message() string {
	if message, found := strings.CutPrefix(r.Status, strconv.Itoa(r.StatusCode)+" "); found {
		return message
	}
	if r.Status != "" {
		return r.Status
	}
	return http.StatusText(r.StatusCode)
}

// CallbackFuncs is a Callback built from functions. A nil function
// ignores the corresponding outcome.
type CallbackFuncs[T any] struct {
	OnResponseFunc func(ctx context.Context, call Call[T], resp *Response[T])
	OnFailureFunc  func(ctx context.Context, call Call[T], err error)
}

var _ Callback[int] = &CallbackFuncs[int]{}

// OnResponse implements Callback.
func (cf *CallbackFuncs[T]) OnResponse(ctx context.Context, call Call[T], resp *Response[T]) {
	if cf.OnResponseFunc != nil {
		cf.OnResponseFunc(ctx, call, resp)
	}
}

// OnFailure implements Callback.
func (cf *CallbackFuncs[T]) OnFailure(ctx context.Context, call Call[T], err error) {
	if cf.OnFailureFunc != nil {
		cf.OnFailureFunc(ctx, call, err)
	}
}
