package httpcall

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"reflect"

	"github.com/ooni/netresult/pkg/errclass"
)

// Decoder decodes the body of a 2xx response. Call wraps the errors
// that are not already an *errclass.DecodeError into one, and turns
// panics into a *netresult.PanicError, so they classify as KindOther.
type Decoder[T any] func(data []byte) (T, error)

// ErrIsNil indicates that the body decoded to a nil map, pointer, or slice.
var ErrIsNil = errors.New("httpcall: nil map, pointer, or slice")

// nilSafetyErrorIfNil returns ErrIsNil iff value is a nil map, pointer, or slice.
//
// This prevents us from processing a literal JSON "null" from a server.
func nilSafetyErrorIfNil[T any](value T) (T, error) {
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			var zero T
			return zero, ErrIsNil
		}
	}
	return value, nil
}

// JSON returns a Decoder parsing the body as JSON.
func JSON[T any]() Decoder[T] {
	return func(data []byte) (T, error) {
		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			return value, &errclass.DecodeError{Format: "json", Err: err}
		}
		value, err := nilSafetyErrorIfNil(value)
		if err != nil {
			return value, &errclass.DecodeError{Format: "json", Err: err}
		}
		return value, nil
	}
}

// XML returns a Decoder parsing the body as XML.
func XML[T any]() Decoder[T] {
	return func(data []byte) (T, error) {
		var value T
		if err := xml.Unmarshal(data, &value); err != nil {
			return value, &errclass.DecodeError{Format: "xml", Err: err}
		}
		return value, nil
	}
}

// Raw returns a Decoder returning the body bytes.
func Raw() Decoder[[]byte] {
	return func(data []byte) ([]byte, error) {
		if data == nil {
			data = []byte{}
		}
		return data, nil
	}
}

// String returns a Decoder returning the body as a string.
func String() Decoder[string] {
	return func(data []byte) (string, error) {
		return string(data), nil
	}
}
