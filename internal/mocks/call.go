package mocks

import (
	"net/http"
	"time"

	"github.com/ooni/netresult/pkg/netcall"
)

// Call allows mocking a netcall.Call.
type Call[T any] struct {
	MockEnqueue    func(cb netcall.Callback[T])
	MockExecute    func() (*netcall.Response[T], error)
	MockCancel     func()
	MockIsExecuted func() bool
	MockIsCanceled func() bool
	MockClone      func() netcall.Call[T]
	MockRequest    func() *http.Request
}

var _ netcall.Call[int] = &Call[int]{}

// Enqueue calls MockEnqueue.
func (c *Call[T]) Enqueue(cb netcall.Callback[T]) {
	c.MockEnqueue(cb)
}

// Execute calls MockExecute.
func (c *Call[T]) Execute() (*netcall.Response[T], error) {
	return c.MockExecute()
}

// Cancel calls MockCancel.
func (c *Call[T]) Cancel() {
	c.MockCancel()
}

// IsExecuted calls MockIsExecuted.
func (c *Call[T]) IsExecuted() bool {
	return c.MockIsExecuted()
}

// IsCanceled calls MockIsCanceled.
func (c *Call[T]) IsCanceled() bool {
	return c.MockIsCanceled()
}

// Clone calls MockClone.
func (c *Call[T]) Clone() netcall.Call[T] {
	return c.MockClone()
}

// Request calls MockRequest.
func (c *Call[T]) Request() *http.Request {
	return c.MockRequest()
}

// Observer allows mocking a netcall.Observer.
type Observer struct {
	MockCallStarted   func()
	MockCallDelivered func(outcome string, elapsed time.Duration)
}

var _ netcall.Observer = &Observer{}

// CallStarted calls MockCallStarted.
func (o *Observer) CallStarted() {
	o.MockCallStarted()
}

// CallDelivered calls MockCallDelivered.
func (o *Observer) CallDelivered(outcome string, elapsed time.Duration) {
	o.MockCallDelivered(outcome, elapsed)
}
