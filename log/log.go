package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

var errorOccured = false

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	l.Level = logrus.InfoLevel
	return l
}

// SetOutput redirects all log messages to `out`.
func SetOutput(out io.Writer) {
	logger.Out = out
}

// ErrorOccured reports whether any errors have occured.
func ErrorOccured() bool {
	return errorOccured
}

func message(format string, a ...interface{}) string {
	msg := strings.TrimSuffix(fmt.Sprintf(format, a...), "\n")
	return strings.Repeat("  ", IndentationLevel) + msg
}

// Log prints an indented and formatted message.
func Log(format string, a ...interface{}) {
	logger.Info(message(format, a...))
}

// Debug prints an indented and formatted debug message if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if !Verbose {
		return
	}
	logger.Level = logrus.DebugLevel
	logger.Debug(message(format, a...))
}

// Success prints an indented and formatted success message.
func Success(format string, a ...interface{}) {
	logger.WithField("result", "success").Info(message(format, a...))
}

// Warning prints an indented and formatted warning.
func Warning(format string, a ...interface{}) {
	logger.Warn(message(format, a...))
}

// Error prints an indented and formatted error message.
func Error(format string, a ...interface{}) {
	errorOccured = true
	logger.Error(message(format, a...))
}

// Fatal prints an indented and formatted error message and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	fmt.Fprintf(logger.Out, "A fatal error occured. Exiting...\n")
	os.Exit(1)
}
