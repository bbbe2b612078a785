package httpcall

//
// HTTP implementation of netcall.Call
//

import (
	"context"
	"errors"
	"io"
	"net/http"
	"runtime/debug"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/ooni/netresult/internal/model"
	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/internal/scrubber"
	"github.com/ooni/netresult/pkg/errclass"
	"github.com/ooni/netresult/pkg/netcall"
	"github.com/ooni/netresult/pkg/netresult"
)

// ErrBodyTooLarge indicates that a 2xx response body is larger than
// Config.MaxBodySize.
var ErrBodyTooLarge = errors.New("httpcall: response body too large")

// ErrAlreadyExecuted is the value Enqueue and Execute panic with
// when the call has already been executed.
var ErrAlreadyExecuted = errors.New("httpcall: already executed")

// Call is an HTTP netcall.Call. The zero value is invalid; use New.
type Call[T any] struct {
	cancel   context.CancelFunc
	canceled atomic.Bool
	config   Config
	ctx      context.Context
	decoder  Decoder[T]
	executed atomic.Bool
	id       string
	logger   model.Logger
	parent   context.Context
	req      *http.Request
}

var _ netcall.Call[int] = &Call[int]{}

// New creates a Call sending req and decoding 2xx bodies with
// decoder. The context of req bounds the lifetime of the call.
func New[T any](config *Config, req *http.Request, decoder Decoder[T]) *Call[T] {
	runtimex.Assert(config != nil, "httpcall: New called with nil config")
	runtimex.PanicIfNil(config.Client, "httpcall: New called with nil config.Client")
	runtimex.Assert(req != nil, "httpcall: New called with nil request")
	runtimex.Assert(decoder != nil, "httpcall: New called with nil decoder")
	parent := req.Context()
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, config.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	return &Call[T]{
		cancel:  cancel,
		config:  *config,
		ctx:     ctx,
		decoder: decoder,
		id:      uuid.NewString(),
		logger:  model.ValidLoggerOrDefault(config.Logger),
		parent:  parent,
		req:     req,
	}
}

// ID returns the unique ID used to correlate the log lines of this call.
func (c *Call[T]) ID() string {
	return c.id
}

// Enqueue implements netcall.Call.
func (c *Call[T]) Enqueue(cb netcall.Callback[T]) {
	runtimex.PanicIfNil(cb, "httpcall: Enqueue called with nil callback")
	c.markExecuted()
	c.config.dispatcher().Go(c.ctx, func(ctx context.Context, err error) {
		if err != nil {
			c.logger.Debugf("httpcall: [%s] not started: %s", c.id, err.Error())
			cb.OnFailure(ctx, c, err)
			return
		}
		resp, err := c.do()
		if err != nil {
			cb.OnFailure(ctx, c, err)
			return
		}
		cb.OnResponse(ctx, c, resp)
	})
}

// Execute implements netcall.Call.
func (c *Call[T]) Execute() (*netcall.Response[T], error) {
	c.markExecuted()
	return c.do()
}

func (c *Call[T]) markExecuted() {
	if !c.executed.CompareAndSwap(false, true) {
		panic(ErrAlreadyExecuted)
	}
}

// Cancel implements netcall.Call. A running call fails with an
// error wrapping context.Canceled.
func (c *Call[T]) Cancel() {
	if c.canceled.CompareAndSwap(false, true) {
		c.logger.Debugf("httpcall: [%s] canceled", c.id)
	}
	c.cancel()
}

// IsExecuted implements netcall.Call.
func (c *Call[T]) IsExecuted() bool {
	return c.executed.Load()
}

// IsCanceled implements netcall.Call.
func (c *Call[T]) IsCanceled() bool {
	return c.canceled.Load()
}

// Clone implements netcall.Call. The clone uses the same context as
// the original request and a fresh copy of the body.
func (c *Call[T]) Clone() netcall.Call[T] {
	req := c.req.Clone(c.parent)
	if c.req.GetBody != nil {
		body, err := c.req.GetBody()
		runtimex.PanicOnError(err, "httpcall: GetBody failed")
		req.Body = body
	}
	return New(&c.config, req, c.decoder)
}

// Request implements netcall.Call.
func (c *Call[T]) Request() *http.Request {
	return c.req
}

// do performs the round trip and reads and decodes the body.
func (c *Call[T]) do() (*netcall.Response[T], error) {
	// Release the context resources once the body has been read.
	defer c.cancel()

	// Clone so that setting headers does not modify the caller's request.
	req := c.req.Clone(c.ctx)
	if c.config.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	c.logger.Debugf("httpcall: [%s] %s %s", c.id, req.Method, req.URL.Redacted())

	resp, err := c.config.Client.Do(req)
	if err != nil {
		c.logger.Debugf("httpcall: [%s] round trip: %s", c.id, scrubber.Scrub(err.Error()))
		return nil, err
	}
	defer resp.Body.Close()
	c.logger.Debugf("httpcall: [%s] %s", c.id, resp.Status)

	// Always read the body, since it is useful to see the error body
	// for non-2xx responses.
	maxBodySize := c.config.maxBodySize()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		c.logger.Debugf("httpcall: [%s] reading body: %s", c.id, scrubber.Scrub(err.Error()))
		return nil, err
	}
	tooLarge := int64(len(data)) > maxBodySize
	if tooLarge {
		data = data[:maxBodySize]
	}
	c.logger.Debugf("httpcall: [%s] body length: %d bytes", c.id, len(data))
	if c.config.LogBody {
		c.logger.Debugf("httpcall: [%s] body: %s", c.id, string(data))
	}

	out := &netcall.Response[T]{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
	}
	if !out.IsSuccessful() {
		out.ErrorBody = data
		return out, nil
	}
	if len(data) <= 0 && (resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusResetContent) {
		return out, nil
	}
	if tooLarge {
		c.logger.Debugf("httpcall: [%s] body larger than %d bytes", c.id, maxBodySize)
		return nil, errclass.New(errclass.KindOther, errclass.FailureBodyTooLarge, errclass.OperationRead, ErrBodyTooLarge)
	}
	body, err := c.decode(data)
	if err != nil {
		c.logger.Debugf("httpcall: [%s] decoding body: %s", c.id, err.Error())
		return nil, err
	}
	out.Body = body
	return out, nil
}

// decode runs the decoder turning a panic into a *netresult.PanicError
// and any other error into a *errclass.DecodeError.
func (c *Call[T]) decode(data []byte) (body T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			body, err = zero, &netresult.PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	body, err = c.decoder(data)
	var decodeErr *errclass.DecodeError
	if err != nil && !errors.As(err, &decodeErr) {
		err = &errclass.DecodeError{Format: "custom", Err: err}
	}
	return
}
