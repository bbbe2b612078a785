package testingx

import (
	"fmt"
	"sync"

	"github.com/ooni/netresult/internal/model"
)

// Logger is a model.Logger collecting the emitted lines. Each line is
// prefixed by the level: "[D] ", "[I] " or "[W] ".
type Logger struct {
	lines []string
	mu    sync.Mutex
}

var _ model.Logger = &Logger{}

func (l *Logger) emit(level, message string) {
	l.mu.Lock()
	l.lines = append(l.lines, fmt.Sprintf("[%s] %s", level, message))
	l.mu.Unlock()
}

// Debug implements model.Logger.
func (l *Logger) Debug(message string) {
	l.emit("D", message)
}

// Debugf implements model.Logger.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit("D", fmt.Sprintf(format, v...))
}

// Info implements model.Logger.
func (l *Logger) Info(message string) {
	l.emit("I", message)
}

// Infof implements model.Logger.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.emit("I", fmt.Sprintf(format, v...))
}

// Warn implements model.Logger.
func (l *Logger) Warn(message string) {
	l.emit("W", message)
}

// Warnf implements model.Logger.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.emit("W", fmt.Sprintf(format, v...))
}

// Lines returns a copy of the collected lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.lines...)
}

// ClearLines removes the collected lines.
func (l *Logger) ClearLines() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}
