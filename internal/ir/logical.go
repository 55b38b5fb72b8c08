package ir

import (
	"io"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// logical holds the two operands and checked type shared by every boolean
// operator (And, Or, Not, Relational). Its Gen is identical across all
// four: materialize the jumping code into a fresh temporary holding true
// or false. Reduce is left as the Expression default (identity) since a
// logical expression is only ever consumed through Jumping or Gen, never
// nested inside an arithmetic expression by this grammar.
type logical struct {
	op    token.Token
	expr1 Expression
	expr2 Expression
	typ   Type
	self  Expression // the concrete node, so Gen can call its own Jumping
}

func (l *logical) Tag() token.Tag { return l.op.Tag() }
func (l *logical) Type() Type     { return l.typ }

func (l *logical) String() string {
	return l.expr1.String() + " " + l.op.String() + " " + l.expr2.String()
}

func (l *logical) Reduce(_ *Context, _ io.Writer) Expression { return l.self }

// Gen implements the standard jumping-code-to-value translation: jump to
// a false label on failure, fall through to assign true, otherwise jump
// past the false branch.
func (l *logical) Gen(ctx *Context, out io.Writer) Expression {
	f := ctx.NewLabel()
	a := ctx.NewLabel()
	temp := ctx.NewTemp(l.typ)
	l.self.Jumping(ctx, out, "", f)
	emitLine(out, "%s = true", temp.String())
	emitLine(out, "goto %s", a)
	emitLabel(out, f)
	emitLine(out, "%s = false", temp.String())
	emitLabel(out, a)
	return temp
}

func checkLogical(left, right Type) Type {
	if left == types.Bool && right == types.Bool {
		return types.Bool
	}
	return nil
}

// And is "&&". Its Jumping short-circuits: if the left side fails, jump
// straight to from without evaluating the right side.
type And struct{ logical }

// NewAnd builds left && right. Fails if either operand isn't bool.
func NewAnd(op token.Token, left, right Expression) (*And, error) {
	typ := checkLogical(left.Type(), right.Type())
	if typ == nil {
		return nil, errNewLogicalType("&&")
	}
	n := &And{logical{op: op, expr1: left, expr2: right, typ: typ}}
	n.self = n
	return n, nil
}

func (n *And) Jumping(ctx *Context, out io.Writer, to, from string) {
	label := from
	if label == "" {
		label = ctx.NewLabel()
	}
	n.expr1.Jumping(ctx, out, "", label)
	n.expr2.Jumping(ctx, out, to, from)
	if from == "" {
		emitLabel(out, label)
	}
}

// Or is "||". Its Jumping short-circuits: if the left side succeeds,
// jump straight to to without evaluating the right side.
type Or struct{ logical }

// NewOr builds left || right. Fails if either operand isn't bool.
func NewOr(op token.Token, left, right Expression) (*Or, error) {
	typ := checkLogical(left.Type(), right.Type())
	if typ == nil {
		return nil, errNewLogicalType("||")
	}
	n := &Or{logical{op: op, expr1: left, expr2: right, typ: typ}}
	n.self = n
	return n, nil
}

func (n *Or) Jumping(ctx *Context, out io.Writer, to, from string) {
	label := to
	if label == "" {
		label = ctx.NewLabel()
	}
	n.expr1.Jumping(ctx, out, label, "")
	n.expr2.Jumping(ctx, out, to, from)
	if to == "" {
		emitLabel(out, label)
	}
}

// Not is "!". Both operands of the embedded logical are the same
// sub-expression; it only ever uses expr1.
type Not struct{ logical }

// NewNot builds !expr. Fails if expr isn't bool.
func NewNot(op token.Token, expr Expression) (*Not, error) {
	if expr.Type() != types.Bool {
		return nil, errNewLogicalType("!")
	}
	n := &Not{logical{op: op, expr1: expr, expr2: expr, typ: types.Bool}}
	n.self = n
	return n, nil
}

func (n *Not) String() string { return n.op.String() + " " + n.expr1.String() }

// Jumping simply swaps to and from: "not true" is "false".
func (n *Not) Jumping(ctx *Context, out io.Writer, to, from string) {
	n.expr1.Jumping(ctx, out, from, to)
}

// Relational is a <, <=, >, >=, ==, or != comparison. Unlike And/Or/Not it
// does not require bool operands: any two equal non-array types are
// accepted, and its Jumping reduces both operands to values first.
type Relational struct{ logical }

// NewRelational builds left op right. Fails if the operand types are
// arrays, or are not identical (mirroring the reference's strict
// left == right check once arrays are ruled out).
func NewRelational(op token.Token, left, right Expression) (*Relational, error) {
	lt, rt := left.Type(), right.Type()
	if types.IsArray(lt) || types.IsArray(rt) || !types.Equal(lt, rt) {
		return nil, errNewLogicalType(op.String())
	}
	n := &Relational{logical{op: op, expr1: left, expr2: right, typ: types.Bool}}
	n.self = n
	return n, nil
}

func (n *Relational) Jumping(ctx *Context, out io.Writer, to, from string) {
	a := n.expr1.Reduce(ctx, out)
	b := n.expr2.Reduce(ctx, out)
	test := a.String() + " " + n.op.String() + " " + b.String()
	jumpingTest(out, test, to, from)
}

func errNewLogicalType(op string) error {
	return &typeError{op: op}
}

type typeError struct{ op string }

func (e *typeError) Error() string { return "type error in \"" + e.op + "\" expression" }
