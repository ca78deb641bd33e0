// Package logging provides the two-stream logger used across acli:
// timestamped informational lines on standard output, labeled warnings
// and errors on standard error.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// timeFormat is the timestamp layout for informational lines.
const timeFormat = "2006-01-02 15:04:05"

// Logger fans log lines out to two streams. Informational and debug lines
// go to standard output; warnings and errors go to standard error with
// [WARNING] and [ERROR] labels.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// New builds a Logger over the given writers. Tests pass buffers.
func New(stdout, stderr io.Writer) *Logger {
	out := log.NewWithOptions(stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})

	errLogger := log.NewWithOptions(stderr, log.Options{})
	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("[WARNING]").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("[ERROR]").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	errLogger.SetStyles(styles)
	errLogger.SetLevel(log.WarnLevel)

	return &Logger{out: out, err: errLogger}
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger over os.Stdout and os.Stderr.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stdout, os.Stderr)
	})
	return defaultLogger
}

// SetVerbose lowers the informational stream to debug level.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.out.SetLevel(log.DebugLevel)
	} else {
		l.out.SetLevel(log.InfoLevel)
	}
}

// Debug logs a debug line to standard output; hidden unless verbose.
func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	l.out.Debug(msg, keyvals...)
}

// Info logs a timestamped informational line to standard output.
func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	l.out.Info(msg, keyvals...)
}

// Warn logs a [WARNING] line to standard error.
func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	l.err.Warn(msg, keyvals...)
}

// Error logs an [ERROR] line to standard error.
func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	l.err.Error(msg, keyvals...)
}
