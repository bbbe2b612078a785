package errclass

// Failure strings.
const (
	FailureAddressNotAvailable     = "address_not_available"
	FailureBodyTooLarge            = "body_too_large"
	FailureBrokenPipe              = "broken_pipe"
	FailureConnectionAborted       = "connection_aborted"
	FailureConnectionAlreadyClosed = "connection_already_closed"
	FailureConnectionRefused       = "connection_refused"
	FailureConnectionReset         = "connection_reset"
	FailureDecodeError             = "decode_error"
	FailureDNSLookupError          = "dns_lookup_error"
	FailureDNSNXDOMAINError        = "dns_nxdomain_error"
	FailureEOFError                = "eof_error"
	FailureGenericTimeoutError     = "generic_timeout_error"
	FailureHostUnreachable         = "host_unreachable"
	FailureHTTPRequestFailed       = "http_request_failed"
	FailureInterrupted             = "interrupted"
	FailureJSONParseError          = "json_parse_error"
	FailureNetworkError            = "network_error"
	FailureNetworkUnreachable      = "network_unreachable"
	FailurePanic                   = "panic"
	FailureTimedOut                = "timed_out"
)

// Operations.
const (
	OperationConnect      = "connect"
	OperationDecode       = "decode"
	OperationHTTPResponse = "http_response"
	OperationRead         = "read"
	OperationRoundTrip    = "http_round_trip"
	OperationWrite        = "write"
	OperationUnknown      = "unknown"
)
