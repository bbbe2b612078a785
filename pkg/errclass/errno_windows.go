//go:build windows

package errclass

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// classifySyscallError maps a syscall error to a failure string or
// returns an empty string.
func classifySyscallError(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ""
	}
	switch errno {
	case windows.WSAECONNREFUSED:
		return FailureConnectionRefused
	case windows.WSAECONNRESET:
		return FailureConnectionReset
	case windows.WSAECONNABORTED:
		return FailureConnectionAborted
	case windows.WSAEHOSTUNREACH:
		return FailureHostUnreachable
	case windows.WSAENETUNREACH:
		return FailureNetworkUnreachable
	case windows.WSAETIMEDOUT:
		return FailureTimedOut
	case windows.WSAEADDRNOTAVAIL:
		return FailureAddressNotAvailable
	case windows.WSAEINTR:
		return FailureInterrupted
	default:
		return ""
	}
}
