// Package optional contains a type to represent optional values.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// Value is an optional value. The zero value is empty.
type Value[T any] struct {
	// indirect is nil when the value is empty.
	indirect *T
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some returns a Value wrapping value. Wrapping a nil pointer, map,
// slice, channel, func or interface yields an empty Value.
func Some[T any](value T) Value[T] {
	if isNil(value) {
		return None[T]()
	}
	return Value[T]{indirect: &value}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNone returns whether the value is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// ErrIsNone is the error Unwrap panics with for an empty Value.
var ErrIsNone = errors.New("is none")

// Unwrap returns the underlying value or panics with ErrIsNone.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(ErrIsNone)
	}
	return *v.indirect
}

// UnwrapOr returns the underlying value or fallback when empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}

// MarshalJSON implements json.Marshaler. An empty value is `null`.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*v.indirect)
}

// UnmarshalJSON implements json.Unmarshaler. `null` yields an empty value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.indirect = &value
	return nil
}
