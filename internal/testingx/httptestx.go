package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/ooni/netresult/internal/runtimex"
)

// MustNewHTTPServer starts an HTTP server on the loopback interface
// using the given handler. The caller must Close the server.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

// HTTPHandlerReset returns a handler that resets the connection
// without sending any response.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn := hijack(w)
		if tc, ok := conn.(*net.TCPConn); ok {
			runtimex.PanicOnError(tc.SetLinger(0), "tc.SetLinger failed")
		}
		conn.Close()
	})
}

// HTTPHandlerEOF returns a handler that closes the connection
// without sending any response.
func HTTPHandlerEOF() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijack(w).Close()
	})
}

// HTTPHandlerResetWhileReadingBody returns a handler that sends the
// headers and part of the body and then resets the connection.
func HTTPHandlerResetWhileReadingBody() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn := hijack(w)
		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: 1024\r\n\r\n{\"lets\":"))
		time.Sleep(100 * time.Millisecond)
		if tc, ok := conn.(*net.TCPConn); ok {
			runtimex.PanicOnError(tc.SetLinger(0), "tc.SetLinger failed")
		}
		conn.Close()
	})
}

// HTTPHandlerBlock returns a handler that does not respond until
// the request context is done.
func HTTPHandlerBlock() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
}

func hijack(w http.ResponseWriter) net.Conn {
	hijacker, ok := w.(http.Hijacker)
	runtimex.Assert(ok, "testingx: the ResponseWriter is not an http.Hijacker")
	conn, _, err := hijacker.Hijack()
	runtimex.PanicOnError(err, "hijacker.Hijack failed")
	return conn
}
