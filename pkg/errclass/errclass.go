package errclass

import (
	"encoding/json"
	"fmt"

	"github.com/ooni/netresult/internal/runtimex"
)

// Kind is the category of a failure.
type Kind string

const (
	// KindStatus is a non-2xx HTTP response.
	KindStatus = Kind("status_error")

	// KindTransport is a failure to complete the exchange.
	KindTransport = Kind("transport_error")

	// KindOther is any other failure.
	KindOther = Kind("other_error")
)

// Error is a classified failure.
type Error struct {
	// Kind is the failure category.
	Kind Kind

	// Failure is the failure string.
	Failure string

	// Operation is the operation that failed.
	Operation string

	// StatusCode is the HTTP status code for KindStatus and zero otherwise.
	StatusCode int

	// Message is the HTTP reason phrase for KindStatus and empty otherwise.
	Message string

	// WrappedErr is the original error.
	WrappedErr error
}

// Error returns the failure string.
func (e *Error) Error() string {
	return e.Failure
}

// Unwrap returns the original error.
func (e *Error) Unwrap() error {
	return e.WrappedErr
}

// MarshalJSON serializes the failure string.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Failure)
}

// Equal returns whether e and other have the same classification. The
// wrapped errors are not compared.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Kind == other.Kind && e.Failure == other.Failure &&
		e.Operation == other.Operation && e.StatusCode == other.StatusCode &&
		e.Message == other.Message
}

// StatusError is the error for a non-2xx HTTP response.
type StatusError struct {
	// StatusCode is the status code.
	StatusCode int

	// Message is the reason phrase (e.g. "Internal Server Error").
	Message string

	// Body is the raw response body, possibly truncated.
	Body []byte
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("http: request failed: %d %s", e.StatusCode, e.Message)
}

// DecodeError is the error for a response body that could not be decoded.
type DecodeError struct {
	// Format is the expected format (e.g. "json").
	Format string

	// Err is the decoder error.
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: cannot decode body: %s", e.Format, e.Err.Error())
}

// Unwrap returns the decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) failure() string {
	if e.Format == "json" {
		return FailureJSONParseError
	}
	return FailureDecodeError
}

// New returns a classified error. It panics if err is nil.
func New(kind Kind, failure, operation string, err error) *Error {
	runtimex.PanicIfNil(err, "errclass: New called with a nil error")
	runtimex.PanicIfTrue(failure == "", "errclass: New called with an empty failure")
	return &Error{
		Kind:       kind,
		Failure:    failure,
		Operation:  operation,
		WrappedErr: err,
	}
}

// KindOf returns the Kind of err, classifying it if needed. It
// returns the empty Kind for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return Classify(err).Kind
}

// IsStatus returns whether err classifies as KindStatus.
func IsStatus(err error) bool {
	return KindOf(err) == KindStatus
}

// IsTransport returns whether err classifies as KindTransport.
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsOther returns whether err classifies as KindOther.
func IsOther(err error) bool {
	return KindOf(err) == KindOther
}

// StatusCode returns the status code of a KindStatus error.
func StatusCode(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	if classified := Classify(err); classified.Kind == KindStatus {
		return classified.StatusCode, true
	}
	return 0, false
}

var _ error = &Error{}
