package netresult

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the failure produced when a catching function recovers
// from a panic.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the stack trace captured when recovering.
	Stack []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns Value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catching calls fn and returns its outcome as a Result. An error
// returned by fn, or a panic in fn, becomes a failure.
func Catching[T any](fn func() (T, error)) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure[T](&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	return Of[T](fn())
}

// Fold calls exactly one of onSuccess and onFailure and returns its value.
func Fold[T, R any](r Result[T], onSuccess func(value T) R, onFailure func(err error) R) R {
	if r.failed {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}

// Map transforms the value of a success with fn and returns a failure
// unchanged. A panic in fn propagates.
func Map[T, R any](r Result[T], fn func(value T) R) Result[R] {
	if r.failed {
		return Failure[R](r.err)
	}
	return Success(fn(r.value))
}

// MapCatching is like Map but an error returned by fn, or a panic in
// fn, becomes a failure.
func MapCatching[T, R any](r Result[T], fn func(value T) (R, error)) Result[R] {
	if r.failed {
		return Failure[R](r.err)
	}
	return Catching(func() (R, error) { return fn(r.value) })
}
