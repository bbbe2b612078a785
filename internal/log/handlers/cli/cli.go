// Package cli contains an apex/log handler writing colored and
// human readable logs to a terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Default is the handler writing to the standard error.
var Default = New(os.Stderr)

// style is how we render the entries of a given level.
type style struct {
	color  *color.Color
	symbol string
}

var styles = map[log.Level]style{
	log.DebugLevel: {color.New(color.FgWhite), "•"},
	log.InfoLevel:  {color.New(color.FgBlue), "•"},
	log.WarnLevel:  {color.New(color.FgYellow), "!"},
	log.ErrorLevel: {color.New(color.FgRed), "⨯"},
	log.FatalLevel: {color.New(color.FgRed, color.Bold), "⨯"},
}

func styleOf(level log.Level) style {
	if s, found := styles[level]; found {
		return s
	}
	return styles[log.InfoLevel]
}

var bold = color.New(color.Bold)

// Handler implements log.Handler. Entries carrying a "type" field
// are rendered as boxes; the others as one colored line.
type Handler struct {
	// Padding is the indentation of the level symbol.
	Padding int

	// Writer is where we write.
	Writer io.Writer

	mu sync.Mutex
}

// New creates a handler writing to w. When w is a file, we wrap it
// so that colors also work on Windows consoles.
func New(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &Handler{Padding: 3, Writer: w}
}

var _ log.Handler = &Handler{}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	kind, _ := e.Fields["type"].(string)
	switch kind {
	case "result":
		return logResult(h.Writer, e)
	case "section_title":
		title, _ := e.Fields.Get("title").(string)
		return writeBox(h.Writer, 24, []string{title})
	case "table":
		return writeBox(h.Writer, 0, fieldLines(e.Fields, color.New(color.FgBlue)))
	default:
		return h.writeLine(e)
	}
}

func (h *Handler) writeLine(e *log.Entry) error {
	s := styleOf(e.Level)
	var b strings.Builder
	b.WriteString(s.color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, s.symbol), e.Message))
	for _, name := range e.Fields.Names() {
		if name == "source" || name == "type" {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", s.color.Sprint(name), e.Fields.Get(name))
	}
	_, err := fmt.Fprintln(h.Writer, b.String())
	return err
}

// fieldLines formats the fields, except "type", as "name: value" lines.
func fieldLines(fields log.Fields, keys *color.Color) (lines []string) {
	for _, name := range fields.Names() {
		if name != "type" {
			lines = append(lines, fmt.Sprintf("%s: %v", keys.Sprint(name), fields.Get(name)))
		}
	}
	return
}

// writeBox writes lines inside a box at least width runes wide.
func writeBox(w io.Writer, width int, lines []string) error {
	for _, line := range lines {
		width = max(width, escapeAwareRuneCount(line))
	}
	var b strings.Builder
	b.WriteString("┏" + strings.Repeat("━", width+2) + "┓\n")
	for _, line := range lines {
		b.WriteString("┃ " + rightPad(line, width) + " ┃\n")
	}
	b.WriteString("┗" + strings.Repeat("━", width+2) + "┛\n")
	_, err := io.WriteString(w, b.String())
	return err
}
