package main

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ooni/netresult/internal/runtimex"
	"github.com/ooni/netresult/internal/testingx"
)

func newJSONServer(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestRun(t *testing.T) {
	for _, convention := range []string{"suspending", "sync"} {
		t.Run(convention, func(t *testing.T) {
			var extra []string
			if convention == "sync" {
				extra = append(extra, "--sync")
			}

			t.Run("a successful call prints the success and exits 0", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(newJSONServer(200, `{"lets":"not","test":1}`))
				defer srv.Close()
				stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
				code := run(append(extra, srv.URL+"/api"), stdout, stderr)
				if code != exitSuccess {
					t.Fatal("unexpected exit code", code, stderr.String())
				}
				if got := strings.TrimSpace(stdout.String()); got != `{"success":{"lets":"not","test":1}}` {
					t.Fatal("unexpected output", got)
				}
			})

			t.Run("a 500 prints the status failure and exits 1", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(newJSONServer(500, `{}`))
				defer srv.Close()
				stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
				code := run(append(extra, srv.URL), stdout, stderr)
				if code != exitFailure {
					t.Fatal("unexpected exit code", code, stderr.String())
				}
				if got := strings.TrimSpace(stdout.String()); got != `{"failure":"http_request_failed"}` {
					t.Fatal("unexpected output", got)
				}
				if !strings.Contains(stderr.String(), "status code: 500") {
					t.Fatal("unexpected log", stderr.String())
				}
			})

			t.Run("a connection closed early prints a transport failure", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerEOF())
				defer srv.Close()
				stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
				code := run(append(extra, srv.URL), stdout, stderr)
				if code != exitFailure {
					t.Fatal("unexpected exit code", code, stderr.String())
				}
				if !strings.Contains(stderr.String(), "transport_error") {
					t.Fatal("unexpected log", stderr.String())
				}
			})
		})
	}

	t.Run("sends the body, the headers, and the config settings", func(t *testing.T) {
		srv := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			runtimex.Assert(r.Method == "PUT", "invalid method")
			runtimex.Assert(r.URL.Path == "/v1/items", "invalid path")
			runtimex.Assert(r.Header.Get("X-Config") == "yes", "invalid config header")
			runtimex.Assert(r.Header.Get("X-Flag") == "also", "invalid flag header")
			runtimex.Assert(r.Header.Get("Authorization") == "Bearer xyz", "invalid authorization")
			runtimex.Assert(r.Header.Get("User-Agent") == "ncall-test/1.0", "invalid user agent")
			data := runtimex.Try1(io.ReadAll(r.Body))
			runtimex.Assert(string(data) == `{"a":1}`, "invalid body")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()
		path := filepath.Join(t.TempDir(), "ncall.jsonc")
		configData := `{
			"version": 1,
			"base_url": "` + srv.URL + `/v1/",
			"authorization": "Bearer xyz",
			"user_agent": "ncall-test/1.0",
			"headers": {"X-Config": "yes"},
		}`
		runtimex.PanicOnError(os.WriteFile(path, []byte(configData), 0600), "os.WriteFile failed")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := run([]string{
			"--config", path, "-X", "put", "-d", `{"a":1}`, "-H", "X-Flag: also", "--metrics", "items",
		}, stdout, stderr)
		if code != exitSuccess {
			t.Fatal("unexpected exit code", code, stderr.String())
		}
		out := stdout.String()
		if !strings.HasPrefix(out, `{"success":null}`) {
			t.Fatal("unexpected output", out)
		}
		if !strings.Contains(out, `netresult_deliveries_total{outcome="success"} 1`) {
			t.Fatal("missing metrics", out)
		}
	})
}

func TestRunMisuse(t *testing.T) {
	for _, tc := range [][]string{
		{},
		{"a", "b"},
		{"--nonexistent", "http://example.com/"},
		{"ftp://example.com/"},
		{"-d", "{", "http://example.com/"},
		{"-H", "no-colon", "http://example.com/"},
		{"-H", "Bad Name: value", "http://example.com/"},
		{"-H", "X-Ctl: a\x00b", "http://example.com/"},
		{"--config", "/nonexistent/ncall.jsonc", "http://example.com/"},
	} {
		t.Run(strings.Join(tc, " "), func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			if code := run(tc, stdout, stderr); code != exitMisuse {
				t.Fatal("unexpected exit code", code)
			}
			if stdout.Len() != 0 {
				t.Fatal("unexpected output", stdout.String())
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	URL, err := resolveURL("https://api.example.com/v1/", "items?x=1")
	if err != nil {
		t.Fatal(err)
	}
	if URL.String() != "https://api.example.com/v1/items?x=1" {
		t.Fatal("unexpected URL", URL.String())
	}
	URL, err = resolveURL("https://api.example.com/v1/", "http://other.example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if URL.Host != "other.example.com" {
		t.Fatal("unexpected URL", URL.String())
	}
}
