package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiEscapes = regexp.MustCompile(`[\x1B\x9B][[\]()#;?]*` +
	`(?:(?:(?:[a-zA-Z\d]*(?:;[a-zA-Z\d]*)*)?\x07)` +
	`|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PR-TZcf-ntqry=><~]))`)

// escapeAwareRuneCount counts the runes of s ignoring ANSI escapes.
func escapeAwareRuneCount(s string) int {
	n := utf8.RuneCountInString(s)
	for _, sm := range ansiEscapes.FindAllString(s, -1) {
		n -= utf8.RuneCountInString(sm)
	}
	return n
}

func rightPad(str string, length int) string {
	c := length - escapeAwareRuneCount(str)
	if c < 0 {
		c = 0
	}
	return str + strings.Repeat(" ", c)
}
