// Package cerr defines the single diagnostic type the parser returns on
// failure; errors from IR constructors are wrapped into it with the
// current source line. Compilation stops at the first error; there is no
// recovery.
package cerr

import (
	"fmt"
	"strings"
)

// CompileError is a fatal diagnostic tied to the source line it was
// raised on.
type CompileError struct {
	Line    int
	Message string
}

// New builds a CompileError for line reporting message.
func New(line int, message string) *CompileError {
	return &CompileError{Line: line, Message: message}
}

// Error renders the wire format every caller of this compiler depends
// on: exactly "Near line <n>: <message>", with no decoration. Anything
// parsing compiler output (tests, scripts, the CLI's stderr contract)
// can rely on this string never changing shape.
func (e *CompileError) Error() string {
	return fmt.Sprintf("Near line %d: %s", e.Line, e.Message)
}

// Format renders a richer, human-facing diagnostic: the plain message,
// plus (when source is non-empty) the offending line and a caret
// pointing at its start. It is for the CLI to print when it has the
// original source text handy; Error() remains the authoritative form for
// scripting.
func (e *CompileError) Format(source string, color bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	line := sourceLine(source, e.Line)
	if line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}
	return sb.String()
}

func sourceLine(source string, n int) string {
	if source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
