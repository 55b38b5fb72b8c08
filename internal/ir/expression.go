package ir

import (
	"fmt"
	"io"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// Type is the type system expressions and statements are checked against.
// Re-exported here so callers of internal/ir rarely need to import
// internal/types directly.
type Type = types.Type

// Expression is a value-producing IR node. Every expression supports two
// code-generation protocols:
//
//   - Gen/Reduce produce a value: Gen may return a non-trivial expression
//     (for an Identifier, Temporary or Constant, itself; for an arithmetic,
//     unary or array-access operator, a rebuilt node over reduced operands;
//     for a boolean operator, a Temporary holding true or false).
//     Reduce collapses an operator to an Identifier, Temporary or Constant;
//     boolean operators return themselves from Reduce.
//   - Jumping produces no value at all; it emits whatever code is needed to
//     jump to `to` when the expression is true and to `from` when it is
//     false, per the jumping-code technique for boolean expressions. A
//     zero label means "fall through" rather than jump.
type Expression interface {
	token.Token
	Type() Type
	Gen(ctx *Context, out io.Writer) Expression
	Reduce(ctx *Context, out io.Writer) Expression
	Jumping(ctx *Context, out io.Writer, to, from string)
}

// emitLine writes stmt to out, indented one tab and newline-terminated,
// matching the three-address listing format used throughout.
func emitLine(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "\t"+format+"\n", args...)
}

// emitLabel writes a label definition with no trailing newline, so
// whatever is emitted immediately afterward continues on the same line
// (two adjacent labels render as "L1:L2:", matching the reference
// implementation).
func emitLabel(out io.Writer, label string) {
	if label == "" {
		return
	}
	fmt.Fprintf(out, "%s:", label)
}

// jumpingFromValue is the default Jumping behavior for any expression
// that is not itself a boolean operator: test its own String() directly
// against the caller's to/from labels. This mirrors the reference
// Expression::jumping, which every leaf and arithmetic node inherits
// unless it overrides jumping itself.
func jumpingFromValue(e Expression, out io.Writer, to, from string) {
	jumpingTest(out, e.String(), to, from)
}

// jumpingTest is the shared core of emit_jumps: test evaluates to a
// boolean value textually; this writes whichever of "if test goto to",
// "goto from", "iffalse test goto from" apply.
func jumpingTest(out io.Writer, test, to, from string) {
	switch {
	case to != "" && from != "":
		emitLine(out, "if %s goto %s", test, to)
		emitLine(out, "goto %s", from)
	case to != "":
		emitLine(out, "if %s goto %s", test, to)
	case from != "":
		emitLine(out, "iffalse %s goto %s", test, from)
	default:
		// both labels fall through: no code to emit
	}
}
