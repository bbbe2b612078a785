// Package errclass classifies the failures of network calls.
//
// Every failure falls in exactly one Kind:
//
// - KindStatus: the server answered with a non-2xx status;
//
// - KindTransport: the exchange did not complete (refused or reset
// connection, timeout, socket closed early, cancellation);
//
// - KindOther: anything else (decoding failures, panics, bugs).
//
// Classify returns an *Error whose Failure field is a short failure
// string in the style of https://github.com/ooni/spec/blob/master/data-formats/df-007-errors.md
// and whose WrappedErr field is the original error, so that errors.Is
// and errors.As keep working on classified errors.
package errclass
