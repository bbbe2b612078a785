package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/pkg/calladapter"
	"github.com/ooni/netresult/pkg/httpcall"
	"github.com/ooni/netresult/pkg/netcall"
	"github.com/ooni/netresult/pkg/netresult"
)

// ErrConventionMismatch is the value Call and Do panic with when used
// on an endpoint declared with the other calling convention.
var ErrConventionMismatch = errors.New("endpoint: calling convention mismatch")

// ErrResponseTypeMismatch indicates that the declared payload type
// is not the type of the decoder.
var ErrResponseTypeMismatch = errors.New("declared response type does not match the decoder type")

// ErrInvalidService indicates that the Service is not properly initialized.
var ErrInvalidService = errors.New("endpoint: invalid service")

// Endpoint is a declared endpoint whose calls produce a Result[T].
type Endpoint[T any] struct {
	adapter *calladapter.Adapter
	decoder httpcall.Decoder[T]
	desc    *Descriptor
	svc     *Service
}

// Declare creates an Endpoint after selecting its adapter. It returns
// a *calladapter.ConfigError when no adapter can serve decl.
func Declare[T any](svc *Service, desc *Descriptor, decl calladapter.Declaration, decoder httpcall.Decoder[T]) (*Endpoint[T], error) {
	runtimex.Assert(desc != nil, "endpoint: Declare called with nil descriptor")
	runtimex.Assert(decoder != nil, "endpoint: Declare called with nil decoder")
	if svc == nil || svc.Client == nil {
		return nil, fmt.Errorf("%w: missing client", ErrInvalidService)
	}
	if _, err := url.Parse(svc.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidService, err)
	}
	adapter, err := svc.registry().Lookup(decl)
	if err != nil {
		return nil, err
	}
	if !adapter.ResponseType.Equal(calladapter.ShapeOf[T]()) {
		return nil, &calladapter.ConfigError{Returns: decl.Returns, Err: ErrResponseTypeMismatch}
	}
	svc.logger().Debugf("endpoint: %s %s: %s adapter for %s", desc.Method, desc.URLPath, adapter.Kind, decl.Returns)
	ep := &Endpoint[T]{
		adapter: adapter,
		decoder: decoder,
		desc:    desc,
		svc:     svc,
	}
	return ep, nil
}

// MustDeclare is like Declare but panics on error.
func MustDeclare[T any](svc *Service, desc *Descriptor, decl calladapter.Declaration, decoder httpcall.Decoder[T]) *Endpoint[T] {
	ep, err := Declare(svc, desc, decl, decoder)
	runtimex.PanicOnError(err, "endpoint: Declare failed")
	return ep
}

// Adapter returns the adapter selected for this endpoint.
func (ep *Endpoint[T]) Adapter() *calladapter.Adapter {
	return ep.adapter
}

// Call creates a call for an endpoint using the Async convention. The
// caller should Enqueue it, use Future, or pass it to netcall.Await.
func (ep *Endpoint[T]) Call(ctx context.Context) *netcall.ResultCall[T] {
	if ep.adapter.Kind != calladapter.Async {
		panic(ErrConventionMismatch)
	}
	return ep.newResultCall(ctx)
}

// Do performs a call for an endpoint using the Sync convention and
// blocks until its Result is available. It panics when ctx is the
// context of a callback.
func (ep *Endpoint[T]) Do(ctx context.Context) netresult.Result[T] {
	if ep.adapter.Kind != calladapter.Sync {
		panic(ErrConventionMismatch)
	}
	return netcall.Await(ctx, ep.newResultCall(ctx))
}

func (ep *Endpoint[T]) newResultCall(ctx context.Context) *netcall.ResultCall[T] {
	config := &netcall.Config{
		Logger:   ep.svc.logger(),
		Observer: ep.svc.Observer,
	}
	return netcall.NewResultCall(config, ep.newCall(ctx))
}

func (ep *Endpoint[T]) newCall(ctx context.Context) netcall.Call[T] {
	req, err := newRequest(ctx, ep.svc, ep.desc)
	if err != nil {
		return &failedCall[T]{ctx: ctx, err: err}
	}
	timeout := ep.desc.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	maxBodySize := ep.desc.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	config := &httpcall.Config{
		Client:      ep.svc.Client,
		Dispatcher:  ep.svc.Dispatcher,
		LogBody:     ep.desc.LogBody,
		Logger:      ep.svc.logger(),
		MaxBodySize: maxBodySize,
		Timeout:     timeout,
	}
	return httpcall.New(config, req, ep.decoder)
}
