package errclass

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/internal/scrubber"
	"github.com/ooni/netresult/pkg/netresult"
)

// Classify maps err to an *Error. It panics if err is nil.
//
// If err already is (or wraps) an *Error, Classify returns it. Otherwise
// it tries, in order, status errors, decoding errors, recovered panics
// and transport errors. What remains is KindOther with a failure string
// like "unknown_failure: XXX" where XXX is the scrubbed error string.
func Classify(err error) *Error {
	runtimex.PanicIfNil(err, "errclass: Classify called with a nil error")

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return &Error{
			Kind:       KindStatus,
			Failure:    FailureHTTPRequestFailed,
			Operation:  OperationHTTPResponse,
			StatusCode: statusErr.StatusCode,
			Message:    statusErr.Message,
			WrappedErr: err,
		}
	}

	// A panic may carry a transport error as its value, so this check
	// must come before the transport classification.
	var panicErr *netresult.PanicError
	if errors.As(err, &panicErr) {
		return New(KindOther, FailurePanic, OperationUnknown, err)
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return New(KindOther, decodeErr.failure(), OperationDecode, err)
	}

	if failure := classifyTransportError(err); failure != "" {
		return New(KindTransport, failure, operationOf(err), err)
	}

	formatted := fmt.Sprintf("unknown_failure: %s", err.Error())
	return New(KindOther, scrubber.Scrub(formatted), OperationUnknown, err)
}

// classifyTransportError returns the failure string of a transport
// error or an empty string if err is not a transport error.
func classifyTransportError(err error) string {
	if failure := classifySyscallError(err); failure != "" {
		return failure
	}
	if errors.Is(err, context.Canceled) {
		return FailureInterrupted
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureGenericTimeoutError
	}
	if errors.Is(err, net.ErrClosed) {
		return FailureConnectionAlreadyClosed
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return FailureEOFError
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return FailureDNSNXDOMAINError
		case dnsErr.IsTimeout:
			return FailureGenericTimeoutError
		default:
			return FailureDNSLookupError
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureGenericTimeoutError
	}
	if failure := classifyWithStringSuffix(err); failure != "" {
		return failure
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureNetworkError
	}
	return ""
}

// classifyWithStringSuffix handles the errors the HTTP stack only
// exposes as strings.
func classifyWithStringSuffix(err error) string {
	s := err.Error()
	switch {
	case strings.HasSuffix(s, "operation was canceled"):
		return FailureInterrupted
	case strings.HasSuffix(s, "EOF"):
		return FailureEOFError
	case strings.HasSuffix(s, "context deadline exceeded"):
		return FailureGenericTimeoutError
	case strings.HasSuffix(s, "i/o timeout"):
		return FailureGenericTimeoutError
	case strings.HasSuffix(s, "TLS handshake timeout"):
		return FailureGenericTimeoutError
	case strings.HasSuffix(s, "use of closed network connection"):
		return FailureConnectionAlreadyClosed
	case strings.HasSuffix(s, "connection reset by peer"):
		return FailureConnectionReset
	case strings.HasSuffix(s, "server closed idle connection"):
		return FailureConnectionAlreadyClosed
	case strings.Contains(s, "server closed the connection"):
		return FailureEOFError
	default:
		return ""
	}
}

func operationOf(err error) string {
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return OperationRoundTrip
	}
	switch opErr.Op {
	case "dial":
		return OperationConnect
	case "read":
		return OperationRead
	case "write":
		return OperationWrite
	default:
		return OperationRoundTrip
	}
}
