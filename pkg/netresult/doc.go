// Package netresult contains Result, a value that is either the decoded
// payload of a network call or the failure that prevented obtaining it.
//
// A Result is built with Success or Failure and is immutable. The methods
// and the generic functions in this package (Fold, Map, MapCatching) let
// callers inspect and transform a Result without going back to the
// (value, error) flow. Get converts back to it when needed.
//
// The success or failure tag never depends on the payload: a Result[error]
// built with Success is a success even though its payload is an error.
//
// Functions taking callbacks come in two flavors. The plain ones (Map,
// Recover) let a panic in the callback propagate to the caller. The
// Catching ones (MapCatching, RecoverCatching, Catching) turn a returned
// error or a recovered panic into a Failure.
package netresult
