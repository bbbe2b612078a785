package netresult

//
// Result definition
//

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/pkg/optional"
)

// Result is either a success carrying a value of type T or a failure
// carrying an error. The zero value is a success with the zero T.
type Result[T any] struct {
	value  T
	err    error
	failed bool
}

// Success returns a successful Result wrapping value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure returns a failed Result wrapping err. It panics if err is nil.
func Failure[T any](err error) Result[T] {
	runtimex.PanicIfNil(err, "netresult: Failure called with a nil error")
	return Result[T]{err: err, failed: true}
}

// Of converts the (value, error) pair returned by a Go function.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// IsSuccess returns whether r is a success.
func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

// IsFailure returns whether r is a failure.
func (r Result[T]) IsFailure() bool {
	return r.failed
}

// GetOrNull returns the value on success and an empty value otherwise.
func (r Result[T]) GetOrNull() optional.Value[T] {
	if r.failed {
		return optional.None[T]()
	}
	return optional.Some(r.value)
}

// ExceptionOrNull returns the captured error or nil on success.
func (r Result[T]) ExceptionOrNull() error {
	return r.err
}

// Get returns the value on success and exactly the captured error on failure.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// MustGet returns the value on success and panics with exactly the
// captured error on failure.
func (r Result[T]) MustGet() T {
	if r.failed {
		panic(r.err)
	}
	return r.value
}

// GetOrElse returns the value on success and onFailure(err) otherwise.
func (r Result[T]) GetOrElse(onFailure func(err error) T) T {
	if r.failed {
		return onFailure(r.err)
	}
	return r.value
}

// GetOrDefault returns the value on success and fallback otherwise.
func (r Result[T]) GetOrDefault(fallback T) T {
	if r.failed {
		return fallback
	}
	return r.value
}

// OnSuccess calls fn with the value if r is a success and returns r.
func (r Result[T]) OnSuccess(fn func(value T)) Result[T] {
	if !r.failed {
		fn(r.value)
	}
	return r
}

// OnFailure calls fn with the error if r is a failure and returns r.
func (r Result[T]) OnFailure(fn func(err error)) Result[T] {
	if r.failed {
		fn(r.err)
	}
	return r
}

// Recover maps a failure to a success using fn and returns a success
// unchanged. A panic in fn propagates.
func (r Result[T]) Recover(fn func(err error) T) Result[T] {
	if r.failed {
		return Success(fn(r.err))
	}
	return r
}

// RecoverCatching is like Recover but an error returned by fn, or a
// panic in fn, becomes a failure.
func (r Result[T]) RecoverCatching(fn func(err error) (T, error)) Result[T] {
	if r.failed {
		return Catching(func() (T, error) { return fn(r.err) })
	}
	return r
}

// Equal returns whether r and other are both successes with deeply equal
// values or both failures with equivalent errors.
func (r Result[T]) Equal(other Result[T]) bool {
	return Equal(r, other)
}

// Equal is the function version of Result.Equal. Two errors are
// equivalent when either matches the other according to errors.Is or
// when they are deeply equal.
func Equal[T any](a, b Result[T]) bool {
	switch {
	case a.failed != b.failed:
		return false
	case a.failed:
		return errors.Is(a.err, b.err) || errors.Is(b.err, a.err) || reflect.DeepEqual(a.err, b.err)
	default:
		return reflect.DeepEqual(a.value, b.value)
	}
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.failed {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}
