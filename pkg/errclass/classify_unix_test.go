//go:build unix

package errclass

import (
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifySyscallErrors(t *testing.T) {
	for _, tc := range []struct {
		errno   syscall.Errno
		op      string
		failure string
		opname  string
	}{
		{syscall.ECONNREFUSED, "dial", FailureConnectionRefused, OperationConnect},
		{syscall.ECONNRESET, "read", FailureConnectionReset, OperationRead},
		{syscall.EPIPE, "write", FailureBrokenPipe, OperationWrite},
		{syscall.EHOSTUNREACH, "dial", FailureHostUnreachable, OperationConnect},
		{syscall.ENETUNREACH, "dial", FailureNetworkUnreachable, OperationConnect},
		{syscall.ETIMEDOUT, "dial", FailureTimedOut, OperationConnect},
	} {
		t.Run(tc.failure, func(t *testing.T) {
			input := &net.OpError{Op: tc.op, Net: "tcp", Err: os.NewSyscallError("syscall", tc.errno)}
			expect := &Error{Kind: KindTransport, Failure: tc.failure, Operation: tc.opname}
			if diff := cmp.Diff(expect, Classify(input)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
