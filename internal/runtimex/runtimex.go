// Package runtimex contains helpers to fail loudly on programmer
// errors, inspired by https://pkg.go.dev/github.com/m-lab/go/rtx.
package runtimex

import (
	"errors"
	"fmt"
)

// PanicOnError panics with an error wrapping err if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// PanicIfFalse panics with an error containing message if assertion is false.
func PanicIfFalse(assertion bool, message string) {
	if !assertion {
		panic(errors.New(message))
	}
}

// PanicIfTrue is the opposite of PanicIfFalse.
func PanicIfTrue(assertion bool, message string) {
	PanicIfFalse(!assertion, message)
}

// PanicIfNil panics if v is a nil interface.
func PanicIfNil(v any, message string) {
	PanicIfTrue(v == nil, message)
}

// Try1 panics if err is not nil and otherwise returns v.
func Try1[T any](v T, err error) T {
	PanicOnError(err, "Try1")
	return v
}

// CatchPanic runs fn and returns the value it panicked with, if any,
// converted to an error.
func CatchPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("%v", v)
			}
		}
	}()
	fn()
	return
}

// Assert is an alias for PanicIfFalse.
func Assert(assertion bool, message string) {
	PanicIfFalse(assertion, message)
}
