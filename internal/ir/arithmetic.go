package ir

import (
	"errors"
	"io"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// Arithmetic is a binary +, -, *, or / expression. Its type is the
// promoted type of its two operands (see types.Max); constructing one
// with operand types that don't promote (e.g. either side an array) is an
// error.
type Arithmetic struct {
	op    token.Token
	expr1 Expression
	expr2 Expression
	typ   Type
}

// NewArithmetic builds expr1 op expr2. It fails if the operand types
// don't have a valid promotion (types.Max returns nil).
func NewArithmetic(op token.Token, expr1, expr2 Expression) (*Arithmetic, error) {
	typ := types.Max(expr1.Type(), expr2.Type())
	if typ == nil {
		return nil, errors.New("arithmetic expression has no valid types")
	}
	return &Arithmetic{op: op, expr1: expr1, expr2: expr2, typ: typ}, nil
}

func (a *Arithmetic) Tag() token.Tag { return a.op.Tag() }
func (a *Arithmetic) Type() Type     { return a.typ }

func (a *Arithmetic) String() string {
	return a.expr1.String() + " " + a.op.String() + " " + a.expr2.String()
}

// Gen reduces both operands, then rebuilds an Arithmetic over the
// reduced values; its result is never itself reduced to a temporary
// until a caller does so explicitly via Reduce.
func (a *Arithmetic) Gen(ctx *Context, out io.Writer) Expression {
	r1 := a.expr1.Reduce(ctx, out)
	r2 := a.expr2.Reduce(ctx, out)
	gen := &Arithmetic{op: a.op, expr1: r1, expr2: r2, typ: a.typ}
	return gen
}

func (a *Arithmetic) Reduce(ctx *Context, out io.Writer) Expression {
	return reduceViaTemp(ctx, out, a.Gen(ctx, out))
}

func (a *Arithmetic) Jumping(_ *Context, out io.Writer, to, from string) {
	jumpingFromValue(a, out, to, from)
}
