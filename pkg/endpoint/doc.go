// Package endpoint declares HTTP endpoints returning a netresult.Result.
//
// A Service holds what endpoints share (base URL, client, logger,
// adapter registry). A Descriptor describes one API (e.g. GET
// /api/v1/test). Declare combines the two with a calladapter.Declaration
// and selects the calling convention once, at declaration time, so that
// configuration errors surface before any request is sent.
//
// Endpoints declared with calladapter.Suspending are used through Call,
// which returns a *netcall.ResultCall. Endpoints declared with
// calladapter.Direct are used through Do, which blocks.
package endpoint
