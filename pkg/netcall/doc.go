// Package netcall adapts asynchronous network calls so that they deliver
// a netresult.Result instead of splitting outcomes between a response
// channel and a failure channel.
//
// A Call is the abstract network call provided by a transport (see the
// httpcall package for an HTTP implementation). NewResultCall wraps a
// Call[T] into a ResultCall[T], which is itself a Call whose payload is a
// netresult.Result[T] and which delivers exactly once on the response
// channel of its callback:
//
// - a 2xx response becomes a success wrapping the decoded body;
//
// - a non-2xx response becomes a failure wrapping an *errclass.StatusError;
//
// - a transport failure becomes a failure wrapping the transport error.
//
// Failures are always classified using errclass.Classify.
//
// Await and Execute provide the blocking calling convention. They must
// not be used from within a callback, since transports run callbacks on
// a bounded set of goroutines.
package netcall
