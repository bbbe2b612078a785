package mocks

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ooni/netresult/pkg/netcall"
)

func TestCall(t *testing.T) {
	t.Run("Enqueue", func(t *testing.T) {
		var called bool
		c := &Call[int]{
			MockEnqueue: func(cb netcall.Callback[int]) { called = true },
		}
		c.Enqueue(&netcall.CallbackFuncs[int]{})
		if !called {
			t.Fatal("not called")
		}
	})

	t.Run("Execute", func(t *testing.T) {
		expected := errors.New("mocked error")
		c := &Call[int]{
			MockExecute: func() (*netcall.Response[int], error) { return nil, expected },
		}
		if _, err := c.Execute(); !errors.Is(err, expected) {
			t.Fatal("unexpected err", err)
		}
	})

	t.Run("Cancel IsExecuted IsCanceled", func(t *testing.T) {
		var canceled bool
		c := &Call[int]{
			MockCancel:     func() { canceled = true },
			MockIsExecuted: func() bool { return true },
			MockIsCanceled: func() bool { return canceled },
		}
		c.Cancel()
		if !c.IsExecuted() || !c.IsCanceled() {
			t.Fatal("unexpected state")
		}
	})

	t.Run("Clone and Request", func(t *testing.T) {
		req := &http.Request{Method: "GET"}
		clone := &Call[int]{}
		c := &Call[int]{
			MockClone:   func() netcall.Call[int] { return clone },
			MockRequest: func() *http.Request { return req },
		}
		if c.Clone() != clone || c.Request() != req {
			t.Fatal("unexpected values")
		}
	})
}

func TestObserver(t *testing.T) {
	var events []string
	o := &Observer{
		MockCallStarted:   func() { events = append(events, "started") },
		MockCallDelivered: func(outcome string, elapsed time.Duration) { events = append(events, outcome) },
	}
	o.CallStarted()
	o.CallDelivered("success", time.Second)
	if len(events) != 2 || events[1] != "success" {
		t.Fatal("unexpected events", events)
	}
}

func TestHTTPClient(t *testing.T) {
	expected := errors.New("mocked error")
	var closed bool
	c := &HTTPClient{
		MockDo:                   func(req *http.Request) (*http.Response, error) { return nil, expected },
		MockCloseIdleConnections: func() { closed = true },
	}
	if _, err := c.Do(&http.Request{}); !errors.Is(err, expected) {
		t.Fatal("unexpected err", err)
	}
	c.CloseIdleConnections()
	if !closed {
		t.Fatal("not closed")
	}
}

func TestLogger(t *testing.T) {
	var count int
	lo := &Logger{
		MockDebug:  func(message string) { count++ },
		MockDebugf: func(format string, v ...interface{}) { count++ },
		MockInfo:   func(message string) { count++ },
		MockInfof:  func(format string, v ...interface{}) { count++ },
		MockWarn:   func(message string) { count++ },
		MockWarnf:  func(format string, v ...interface{}) { count++ },
	}
	lo.Debug("x")
	lo.Debugf("%s", "x")
	lo.Info("x")
	lo.Infof("%s", "x")
	lo.Warn("x")
	lo.Warnf("%s", "x")
	if count != 6 {
		t.Fatal("unexpected count", count)
	}
}
