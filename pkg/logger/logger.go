// Package logger provides logging functionality for the tdome application.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides leveled logging capabilities.
type Logger interface {
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...interface{})
	// Infof logs a formatted informational message.
	Infof(format string, args ...interface{})
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...interface{})
	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Infof does nothing for noop logger.
func (n *noopLogger) Infof(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout and stderr.
type defaultLogger struct {
	mu      sync.Mutex
	verbose bool
	quiet   bool
}

// Options configures the default logger.
type Options struct {
	// Verbose enables debug messages.
	Verbose bool
	// Quiet suppresses everything below error level.
	Quiet bool
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger(opts Options) Logger {
	return &defaultLogger{
		verbose: opts.Verbose,
		quiet:   opts.Quiet,
	}
}

// Debugf writes a formatted debug message to stdout when verbose is enabled.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	if !d.verbose || d.quiet {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stdout, "DEBUG: "+format+"\n", args...)
}

// Infof writes a formatted informational message to stdout.
func (d *defaultLogger) Infof(format string, args ...interface{}) {
	if d.quiet {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stdout, "INFO: "+format+"\n", args...)
}

// Warnf writes a formatted warning message to stdout.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	if d.quiet {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stdout, "WARN: "+format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}
