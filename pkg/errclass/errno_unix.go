//go:build unix

package errclass

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// classifySyscallError maps a syscall error to a failure string or
// returns an empty string.
func classifySyscallError(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ""
	}
	switch errno {
	case unix.ECONNREFUSED:
		return FailureConnectionRefused
	case unix.ECONNRESET:
		return FailureConnectionReset
	case unix.ECONNABORTED:
		return FailureConnectionAborted
	case unix.EHOSTUNREACH:
		return FailureHostUnreachable
	case unix.ENETUNREACH:
		return FailureNetworkUnreachable
	case unix.ETIMEDOUT:
		return FailureTimedOut
	case unix.EPIPE:
		return FailureBrokenPipe
	case unix.EADDRNOTAVAIL:
		return FailureAddressNotAvailable
	case unix.ECANCELED, unix.EINTR:
		return FailureInterrupted
	default:
		return ""
	}
}
