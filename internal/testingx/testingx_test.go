package testingx

import (
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPHandlers(t *testing.T) {
	t.Run("HTTPHandlerReset", func(t *testing.T) {
		srv := MustNewHTTPServer(HTTPHandlerReset())
		defer srv.Close()
		resp, err := http.Get(srv.URL)
		if err == nil {
			resp.Body.Close()
			t.Fatal("expected an error")
		}
	})

	t.Run("HTTPHandlerEOF", func(t *testing.T) {
		srv := MustNewHTTPServer(HTTPHandlerEOF())
		defer srv.Close()
		resp, err := http.Get(srv.URL)
		if err == nil {
			resp.Body.Close()
			t.Fatal("expected an error")
		}
	})

	t.Run("HTTPHandlerResetWhileReadingBody", func(t *testing.T) {
		srv := MustNewHTTPServer(HTTPHandlerResetWhileReadingBody())
		defer srv.Close()
		resp, err := http.Get(srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if _, err := io.ReadAll(resp.Body); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestLogger(t *testing.T) {
	logger := &Logger{}
	logger.Debug("a")
	logger.Debugf("%s", "b")
	logger.Info("c")
	logger.Infof("%s", "d")
	logger.Warn("e")
	logger.Warnf("%s", "f")
	expect := []string{"[D] a", "[D] b", "[I] c", "[I] d", "[W] e", "[W] f"}
	if diff := cmp.Diff(expect, logger.Lines()); diff != "" {
		t.Fatal(diff)
	}
	logger.ClearLines()
	if len(logger.Lines()) != 0 {
		t.Fatal("expected no lines")
	}
}
