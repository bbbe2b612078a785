package netresult

import (
	"encoding/json"
	"errors"
)

// SerializedError is the error of a failure decoded from JSON. Only
// the error string survives serialization.
type SerializedError struct {
	Failure string
}

// Error implements error.
func (e *SerializedError) Error() string {
	return e.Failure
}

// ErrInvalidJSON indicates that a serialized Result is neither a
// success nor a failure.
var ErrInvalidJSON = errors.New("netresult: expected exactly one of success and failure")

type resultJSON struct {
	Success json.RawMessage `json:"success,omitempty"`
	Failure *string         `json:"failure,omitempty"`
}

// MarshalJSON implements json.Marshaler. A success serializes as
// {"success": value} and a failure as {"failure": "error string"}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.failed {
		failure := r.err.Error()
		return json.Marshal(resultJSON{Failure: &failure})
	}
	data, err := json.Marshal(r.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resultJSON{Success: data})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var rj resultJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	switch {
	case rj.Failure != nil && rj.Success == nil:
		*r = Failure[T](&SerializedError{Failure: *rj.Failure})
		return nil
	case rj.Failure == nil && rj.Success != nil:
		var value T
		if err := json.Unmarshal(rj.Success, &value); err != nil {
			return err
		}
		*r = Success(value)
		return nil
	default:
		return ErrInvalidJSON
	}
}
