// Package httpcall implements netcall.Call on top of a model.HTTPClient.
//
// A Call sends a single request. Enqueue runs it on a Dispatcher and
// reports the outcome to a netcall.Callback; Execute runs it inline.
// Non-2xx responses are reported through Callback.OnResponse with the
// raw body in Response.ErrorBody; the body of 2xx responses is decoded
// using the Decoder given to New.
package httpcall
