// Package diag wraps logrus with the diagnostic program-name prefix carried
// explicitly as a constructor argument, rather than read from a process
// global (see spec.md §9, "Global process-wide state").
package diag

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger logs structured diagnostics under a fixed program-name prefix and
// owns the fatal-exit path so tests can observe it without killing the test
// binary.
type Logger struct {
	base   *logrus.Logger
	argv0  string
	exitFn func(code int)
}

// New returns a Logger that prefixes every entry with argv0 and exits the
// process via os.Exit on Fatalf.
func New(argv0 string) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{base: base, argv0: argv0, exitFn: os.Exit}
}

// WithExitFunc overrides the function invoked by Fatalf, for tests.
func (l *Logger) WithExitFunc(fn func(code int)) *Logger {
	l.exitFn = fn
	return l
}

// entry returns a logrus entry tagged with this logger's program name.
func (l *Logger) entry() *logrus.Entry {
	return l.base.WithField("argv0", l.argv0)
}

// Errorf logs a recoverable diagnostic at Error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

// Debugf logs a diagnostic at Debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry().Debugf(format, args...)
}

// Fatalf logs a diagnostic at Error level naming the offending symbol, then
// calls the injected exit function with status 1. Per §7 item 2/5, static
// DSL errors and internal-coding-error assertions are not recoverable and
// not caught — Fatalf does not return control to its caller under the
// default (os.Exit) exit function.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
	l.exitFn(1)
}
