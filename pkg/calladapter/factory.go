package calladapter

import (
	"errors"
	"fmt"
)

// Kind is the calling convention chosen by an Adapter.
type Kind int

const (
	// Async delivers the Result through a callback or a future.
	Async Kind = iota + 1

	// Sync blocks the caller until the Result is available.
	Sync
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Async:
		return "async"
	case Sync:
		return "sync"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Adapter is the outcome of a successful adapter selection.
type Adapter struct {
	// Kind is the calling convention.
	Kind Kind

	// ResponseType is the type of the payload of the Result.
	ResponseType Shape
}

// ErrNoAdapter indicates that every factory declined a declaration.
var ErrNoAdapter = errors.New("no adapter for this return type")

// ErrNotParameterized indicates a Result or Call without type argument.
var ErrNotParameterized = errors.New("must be parameterized (e.g. netresult.Result[Foo])")

// ErrNestedResult indicates a Result of a Result.
var ErrNestedResult = errors.New("a Result cannot wrap another Result")

// ConfigError is a fatal configuration error found at declaration time.
type ConfigError struct {
	// Returns is the offending declared return type.
	Returns Shape

	// Err is the reason.
	Err error
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("calladapter: %s: %s", e.Returns, e.Err.Error())
}

// Unwrap returns the reason.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Factory selects an adapter for a Declaration. It returns (nil, nil) to
// decline and a *ConfigError to reject the declaration.
type Factory interface {
	Get(decl Declaration) (*Adapter, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(decl Declaration) (*Adapter, error)

// Get implements Factory.
func (fx FactoryFunc) Get(decl Declaration) (*Adapter, error) {
	return fx(decl)
}

// ResultFactory is the Factory for netresult.Result return types.
type ResultFactory struct{}

var _ Factory = ResultFactory{}

// Get implements Factory.
func (ResultFactory) Get(decl Declaration) (*Adapter, error) {
	returns := decl.Returns
	switch returns.Name {
	case CallName:
		if !returns.IsParameterized() {
			return nil, &ConfigError{Returns: returns, Err: ErrNotParameterized}
		}
		inner := returns.Args[0]
		if inner.Name != ResultName {
			return nil, nil
		}
		payload, err := resultPayload(returns, inner)
		if err != nil {
			return nil, err
		}
		return &Adapter{Kind: Async, ResponseType: payload}, nil

	case ResultName:
		payload, err := resultPayload(returns, returns)
		if err != nil {
			return nil, err
		}
		kind := Sync
		if decl.Has(Suspend) {
			kind = Async
		}
		return &Adapter{Kind: kind, ResponseType: payload}, nil

	default:
		return nil, nil
	}
}

// resultPayload returns the payload shape of result, which appears
// within the declared return type returns.
func resultPayload(returns, result Shape) (Shape, error) {
	if !result.IsParameterized() {
		return Shape{}, &ConfigError{Returns: returns, Err: ErrNotParameterized}
	}
	payload := result.Args[0]
	if payload.Name == ResultName {
		return Shape{}, &ConfigError{Returns: returns, Err: ErrNestedResult}
	}
	return payload, nil
}
