package logsvc

import (
	"log"

	"github.com/sinergiai/sinergi/core"
)

// consoleLogger writes to a std logger only; used locally and in tests
// where no rollbar token is configured.
type consoleLogger struct {
	std           *log.Logger
	disableOutput bool
}

var _ core.Logger = (*consoleLogger)(nil)

func NewConsoleLogger(std *log.Logger) core.Logger {
	return &consoleLogger{std: std}
}

// NewConsoleLoggerMock silences output; for tests.
func NewConsoleLoggerMock() core.Logger {
	return &consoleLogger{std: log.New(log.Writer(), "", 0), disableOutput: true}
}

func (l consoleLogger) print(level, msg string, args []interface{}) {
	if l.disableOutput {
		return
	}
	l.std.Println(level + ": " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l consoleLogger) Debug(msg string, args ...interface{}) { l.print("DEBUG", msg, args) }
func (l consoleLogger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args) }
func (l consoleLogger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args) }
func (l consoleLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }
func (l consoleLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
