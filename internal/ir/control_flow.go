package ir

import (
	"errors"
	"io"

	"github.com/cwbudde/tacc/internal/types"
)

// If is "if (expr) stmt" with no else clause.
type If struct {
	baseStatement
	expr Expression
	stmt Statement
}

// NewIf builds if (expr) stmt. Fails unless expr is bool-typed.
func NewIf(expr Expression, stmt Statement) (*If, error) {
	if expr.Type() != types.Bool {
		return nil, errors.New("boolean required in if")
	}
	return &If{expr: expr, stmt: stmt}, nil
}

func (s *If) Gen(ctx *Context, out io.Writer, _, a string) {
	label := ctx.NewLabel()
	s.expr.Jumping(ctx, out, "", a)
	emitLabel(out, label)
	s.stmt.Gen(ctx, out, label, a)
}

// Else is "if (expr) stmtIf else stmtElse".
type Else struct {
	baseStatement
	expr             Expression
	stmtIf, stmtElse Statement
}

// NewElse builds if (expr) stmtIf else stmtElse. Fails unless expr is
// bool-typed.
func NewElse(expr Expression, stmtIf, stmtElse Statement) (*Else, error) {
	if expr.Type() != types.Bool {
		return nil, errors.New("boolean required in if")
	}
	return &Else{expr: expr, stmtIf: stmtIf, stmtElse: stmtElse}, nil
}

func (s *Else) Gen(ctx *Context, out io.Writer, _, a string) {
	labelIf := ctx.NewLabel()
	labelElse := ctx.NewLabel()
	s.expr.Jumping(ctx, out, "", labelElse)
	emitLabel(out, labelIf)
	s.stmtIf.Gen(ctx, out, labelIf, a)
	emitLine(out, "goto %s", a)
	emitLabel(out, labelElse)
	s.stmtElse.Gen(ctx, out, labelElse, a)
}

// While is "while (expr) stmt". It is built in two steps so a Break
// nested inside stmt can capture a reference to the While before its
// body has been parsed: construct with NewWhile, register it as the
// enclosing loop, parse the body, then call Init.
type While struct {
	baseStatement
	expr Expression
	stmt Statement
}

// NewWhile returns an empty While ready to be registered as an enclosing
// loop before its condition and body are parsed.
func NewWhile() *While { return &While{} }

// Init fills in the condition and body once both have been parsed. Fails
// unless expr is bool-typed. The message matches Do.Init's, not "while":
// the reference reports both under the same text.
func (w *While) Init(expr Expression, stmt Statement) error {
	if expr.Type() != types.Bool {
		return errors.New("boolean required in do")
	}
	w.expr, w.stmt = expr, stmt
	return nil
}

func (w *While) Gen(ctx *Context, out io.Writer, b, a string) {
	w.after = a
	w.expr.Jumping(ctx, out, "", a)
	label := ctx.NewLabel()
	emitLabel(out, label)
	w.stmt.Gen(ctx, out, label, b)
	emitLine(out, "goto %s", b)
}

// Do is "do stmt while (expr);". Like While it is built in two steps so
// Break can capture it before the body is parsed.
type Do struct {
	baseStatement
	expr Expression
	stmt Statement
}

// NewDo returns an empty Do ready to be registered as an enclosing loop.
func NewDo() *Do { return &Do{} }

// Init fills in the body and condition once both have been parsed. Fails
// unless expr is bool-typed.
func (d *Do) Init(stmt Statement, expr Expression) error {
	if expr.Type() != types.Bool {
		return errors.New("boolean required in do")
	}
	d.stmt, d.expr = stmt, expr
	return nil
}

func (d *Do) Gen(ctx *Context, out io.Writer, b, a string) {
	d.after = a
	label := ctx.NewLabel()
	d.stmt.Gen(ctx, out, b, label)
	emitLabel(out, label)
	d.expr.Jumping(ctx, out, b, "")
}

// Break is "break;". It captures a reference to its innermost enclosing
// loop at construction time (via the parser's Context.CurrentLoop), and
// emits a jump to that loop's after label at generation time, once the
// loop has actually generated one.
type Break struct {
	baseStatement
	loop loopStatement
}

// NewBreak builds a break targeting ctx's current loop. Fails if there
// is no enclosing loop.
func NewBreak(ctx *Context) (*Break, error) {
	loop := ctx.CurrentLoop()
	if loop == nil {
		return nil, errors.New("unenclosed break")
	}
	return &Break{loop: loop}, nil
}

func (b *Break) Gen(_ *Context, out io.Writer, _, _ string) {
	emitLine(out, "goto %s", b.loop.After())
}
