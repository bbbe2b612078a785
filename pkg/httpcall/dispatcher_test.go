package httpcall

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ooni/netresult/pkg/netcall"
	"go.uber.org/goleak"
)

func TestDispatcher(t *testing.T) {
	t.Run("bounds the number of concurrent functions", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
		d := NewDispatcher(2)
		var running, peak atomic.Int64
		for i := 0; i < 10; i++ {
			d.Go(context.Background(), func(ctx context.Context, err error) {
				if err != nil {
					t.Error(err)
					return
				}
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				running.Add(-1)
			})
		}
		d.Wait()
		if p := peak.Load(); p > 2 || p < 1 {
			t.Fatal("unexpected peak", p)
		}
	})

	t.Run("marks the context and ignores its cancellation", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
		d := NewDispatcher(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var marked, alive bool
		d.Go(ctx, func(cbctx context.Context, err error) {
			marked = netcall.IsCallbackContext(cbctx)
			alive = cbctx.Err() == nil
		})
		d.Wait()
		if !marked || !alive {
			t.Fatal("unexpected", marked, alive)
		}
	})

	t.Run("reports the context error while waiting for a slot", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
		d := NewDispatcher(1)
		release := make(chan struct{})
		d.Go(context.Background(), func(ctx context.Context, err error) {
			<-release
		})
		ctx, cancel := context.WithCancel(context.Background())
		var (
			mu  sync.Mutex
			got error
		)
		done := make(chan struct{})
		d.Go(ctx, func(_ context.Context, err error) {
			mu.Lock()
			got = err
			mu.Unlock()
			close(done)
		})
		cancel()
		<-done
		close(release)
		d.Wait()
		mu.Lock()
		defer mu.Unlock()
		if !errors.Is(got, context.Canceled) {
			t.Fatal("unexpected", got)
		}
	})
}
