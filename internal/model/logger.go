package model

//
// Logger
//

// DebugLogger emits debug messages.
type DebugLogger interface {
	Debug(msg string)
	Debugf(format string, v ...interface{})
}

// InfoLogger emits debug and informational messages.
type InfoLogger interface {
	DebugLogger
	Info(msg string)
	Infof(format string, v ...interface{})
}

// Logger is the logger used by this module. The `log.Log` value
// exported by `apex/log` implements this interface.
type Logger interface {
	InfoLogger
	Warn(msg string)
	Warnf(format string, v ...interface{})
}

// DiscardLogger is a Logger that drops every message.
var DiscardLogger Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debug(msg string) {}

func (discardLogger) Debugf(format string, v ...interface{}) {}

func (discardLogger) Info(msg string) {}

func (discardLogger) Infof(format string, v ...interface{}) {}

func (discardLogger) Warn(msg string) {}

func (discardLogger) Warnf(format string, v ...interface{}) {}

// ValidLoggerOrDefault returns logger when it is not nil and
// DiscardLogger otherwise.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}

// ErrorToStringOrOK returns "ok" for a nil error and the
// error string otherwise.
func ErrorToStringOrOK(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
