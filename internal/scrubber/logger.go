package scrubber

import (
	"fmt"

	"github.com/ooni/netresult/internal/model"
)

// Logger scrubs every message before passing it to the wrapped
// model.Logger, including the ones the wrapped logger drops.
type Logger struct {
	model.Logger
}

// NewLogger wraps logger, which may be nil, with scrubbing.
func NewLogger(logger model.Logger) *Logger {
	return &Logger{model.ValidLoggerOrDefault(logger)}
}

var _ model.Logger = &Logger{}

func (sl *Logger) Debug(message string) {
	sl.Logger.Debug(Scrub(message))
}

func (sl *Logger) Debugf(format string, v ...interface{}) {
	sl.Debug(fmt.Sprintf(format, v...))
}

func (sl *Logger) Info(message string) {
	sl.Logger.Info(Scrub(message))
}

func (sl *Logger) Infof(format string, v ...interface{}) {
	sl.Info(fmt.Sprintf(format, v...))
}

func (sl *Logger) Warn(message string) {
	sl.Logger.Warn(Scrub(message))
}

func (sl *Logger) Warnf(format string, v ...interface{}) {
	sl.Warn(fmt.Sprintf(format, v...))
}
