// Package logging is poczfx's structured logging wrapper: it calls
// through to commonlog the same way server.LspServer does (a bare
// commonlog.NewInfoMessage call), but gives every other package a
// named scope instead of duplicating that call site everywhere.
// Grounded on the teacher's only logging call, server/lsp.go's
// initialize handler.
package logging

import (
	"fmt"

	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Logger scopes every emitted message with a component name, e.g.
// "cache" or "batch".
type Logger struct {
	name string
}

// Named returns a Logger scoped to name.
func Named(name string) Logger {
	return Logger{name: name}
}

func (l Logger) prefix(msg string) string {
	return "[" + l.name + "] " + msg
}

// Info logs an informational message.
func (l Logger) Info(msg string) {
	commonlog.NewInfoMessage(0, l.prefix(msg))
}

// Infof logs a formatted informational message.
func (l Logger) Infof(format string, args ...any) {
	commonlog.NewInfoMessage(0, l.prefix(fmt.Sprintf(format, args...)))
}

// Warning logs a warning message.
func (l Logger) Warning(msg string) {
	commonlog.NewWarningMessage(0, l.prefix(msg))
}

// Warningf logs a formatted warning message.
func (l Logger) Warningf(format string, args ...any) {
	commonlog.NewWarningMessage(0, l.prefix(fmt.Sprintf(format, args...)))
}

// Error logs an error message.
func (l Logger) Error(msg string) {
	commonlog.NewErrorMessage(0, l.prefix(msg))
}

// Errorf logs a formatted error message.
func (l Logger) Errorf(format string, args ...any) {
	commonlog.NewErrorMessage(0, l.prefix(fmt.Sprintf(format, args...)))
}
