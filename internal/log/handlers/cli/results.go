package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

// resultWidth is the width of the box of a "result" entry.
const resultWidth = 48

var (
	successHeadline = color.New(color.FgGreen, color.Bold)
	failureHeadline = color.New(color.FgRed, color.Bold)
)

// logResult renders a "result" entry, whose fields are those emitted
// by the ncall command for a delivered Result.
func logResult(w io.Writer, e *log.Entry) error {
	f := e.Fields
	outcome, _ := f.Get("outcome").(string)
	headline := successHeadline.Sprint("✓ success")
	if outcome != "success" {
		headline = failureHeadline.Sprintf("⨯ %s", outcome)
	}
	rows := []string{headline}
	if e.Message != "" {
		rows = append(rows, e.Message)
	}
	if failure, ok := f.Get("failure").(string); ok && failure != "" {
		rows = append(rows, "failure: "+failure)
	}
	if code, ok := f.Get("status_code").(int); ok && code > 0 {
		rows = append(rows, fmt.Sprintf("status code: %d", code))
	}
	if elapsed, ok := f.Get("elapsed").(time.Duration); ok {
		rows = append(rows, "elapsed: "+elapsed.Round(time.Millisecond).String())
	}
	var lines []string
	for _, row := range rows {
		lines = append(lines, strings.Split(wordwrap.WrapString(row, resultWidth), "\n")...)
	}
	return writeBox(w, resultWidth, lines)
}
