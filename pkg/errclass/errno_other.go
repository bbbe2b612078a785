//go:build !unix && !windows

package errclass

// classifySyscallError always returns an empty string on systems
// where we do not map errno values.
func classifySyscallError(err error) string {
	return ""
}
