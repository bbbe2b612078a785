package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestHandler(t *testing.T) {
	t.Run("plain entries", func(t *testing.T) {
		w := &bytes.Buffer{}
		h := New(w)
		err := h.HandleLog(&log.Entry{
			Level:   log.InfoLevel,
			Message: "hello",
			Fields:  log.Fields{"source": "ignored", "key": "value"},
		})
		if err != nil {
			t.Fatal(err)
		}
		out := w.String()
		if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
			t.Fatal("unexpected output", out)
		}
		if strings.Contains(out, "ignored") {
			t.Fatal("source should be skipped", out)
		}
	})

	t.Run("section_title", func(t *testing.T) {
		w := &bytes.Buffer{}
		err := New(w).HandleLog(&log.Entry{
			Level:  log.InfoLevel,
			Fields: log.Fields{"type": "section_title", "title": "GET /api"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(w.String(), "┃ GET /api") {
			t.Fatal("unexpected output", w.String())
		}
	})

	t.Run("table", func(t *testing.T) {
		w := &bytes.Buffer{}
		err := New(w).HandleLog(&log.Entry{
			Level:  log.InfoLevel,
			Fields: log.Fields{"type": "table", "a": 1, "bb": "x"},
		})
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(w.String()), "\n")
		if len(lines) != 4 {
			t.Fatal("unexpected output", w.String())
		}
	})

	t.Run("result", func(t *testing.T) {
		w := &bytes.Buffer{}
		err := New(w).HandleLog(&log.Entry{
			Level:   log.InfoLevel,
			Message: "GET https://example.com/",
			Fields: log.Fields{
				"type":        "result",
				"outcome":     "status_error",
				"failure":     "http_request_failed",
				"status_code": 500,
				"elapsed":     1500 * time.Millisecond,
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		out := w.String()
		for _, expect := range []string{"⨯ status_error", "failure: http_request_failed", "status code: 500", "elapsed: 1.5s"} {
			if !strings.Contains(out, expect) {
				t.Fatal("missing", expect, "in", out)
			}
		}
	})

	t.Run("result wraps long lines", func(t *testing.T) {
		w := &bytes.Buffer{}
		err := New(w).HandleLog(&log.Entry{
			Level:   log.InfoLevel,
			Message: strings.TrimSpace(strings.Repeat("word ", 20)),
			Fields:  log.Fields{"type": "result", "outcome": "success"},
		})
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(w.String()), "\n")
		// top, headline, three wrapped message lines, bottom
		if len(lines) != 6 {
			t.Fatal("unexpected output", w.String())
		}
	})

	t.Run("unknown types use the default format", func(t *testing.T) {
		w := &bytes.Buffer{}
		err := New(w).HandleLog(&log.Entry{
			Level:   log.WarnLevel,
			Message: "careful",
			Fields:  log.Fields{"type": "progress"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(w.String(), "careful") {
			t.Fatal("unexpected output", w.String())
		}
	})
}

func TestRightPad(t *testing.T) {
	colored := "\x1b[34mkey\x1b[0m"
	if got := rightPad(colored, 5); got != colored+"  " {
		t.Fatalf("unexpected %q", got)
	}
	if got := rightPad("toolong", 3); got != "toolong" {
		t.Fatalf("unexpected %q", got)
	}
}
