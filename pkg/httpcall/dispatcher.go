package httpcall

import (
	"context"
	"sync"

	"github.com/ooni/netresult/pkg/netcall"
	"golang.org/x/sync/semaphore"
)

// Dispatcher runs enqueued calls in background goroutines, with an
// optional bound on the number of calls running at the same time.
type Dispatcher struct {
	sema *semaphore.Weighted
	wg   sync.WaitGroup
}

// DefaultDispatcher is the unbounded Dispatcher used by default.
var DefaultDispatcher = NewDispatcher(0)

// NewDispatcher creates a Dispatcher running at most maxConcurrency
// calls at the same time. Zero or negative means unbounded.
func NewDispatcher(maxConcurrency int64) *Dispatcher {
	d := &Dispatcher{}
	if maxConcurrency > 0 {
		d.sema = semaphore.NewWeighted(maxConcurrency)
	}
	return d
}

// Go runs fn in a background goroutine once a slot is available.
//
// The context passed to fn carries the values of ctx, is not canceled
// when ctx is, and is marked with netcall.WithCallbackContext. If ctx
// is done before a slot becomes available, fn receives the ctx error
// and must not perform the call.
func (d *Dispatcher) Go(ctx context.Context, fn func(ctx context.Context, err error)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		cbctx := netcall.WithCallbackContext(context.WithoutCancel(ctx))
		if d.sema != nil {
			if err := d.sema.Acquire(ctx, 1); err != nil {
				fn(cbctx, err)
				return
			}
			defer d.sema.Release(1)
		}
		fn(cbctx, nil)
	}()
}

// Wait blocks until all the goroutines started by Go have returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
