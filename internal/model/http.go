package model

import "net/http"

//
// HTTP definitions shared by the transport and the endpoints.
//

const (
	// HTTPHeaderAccept is the Accept header we use for JSON endpoints.
	HTTPHeaderAccept = "application/json"

	// HTTPContentTypeJSON is the Content-Type we use for JSON bodies.
	HTTPContentTypeJSON = "application/json"

	// HTTPHeaderUserAgent is the default User-Agent.
	HTTPHeaderUserAgent = "netresult/0.1.0"
)

// HTTPClient is the HTTP client the transport issues requests with. The
// *http.Client type from the standard library satisfies this interface.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes the idle connections.
	CloseIdleConnections()
}
