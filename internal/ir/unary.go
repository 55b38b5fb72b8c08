package ir

import (
	"errors"
	"io"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// UnaryOperator is a prefix "-" expression. Its type promotes against int
// (so "- c" where c is a char still yields an int), matching the
// reference's Type::max(Type::integer, expression->type()).
type UnaryOperator struct {
	op   token.Token
	expr Expression
	typ  Type
}

// NewUnaryOperator builds -expr.
func NewUnaryOperator(op token.Token, expr Expression) (*UnaryOperator, error) {
	typ := types.Max(types.Int, expr.Type())
	if typ == nil {
		return nil, errors.New("type error")
	}
	return &UnaryOperator{op: op, expr: expr, typ: typ}, nil
}

func (u *UnaryOperator) Tag() token.Tag { return u.op.Tag() }
func (u *UnaryOperator) Type() Type     { return u.typ }

// String renders the operator followed by its operand ("- x"), not just
// the bare operator: the result must be a complete value expression
// wherever it is assigned directly (e.g. "t1 = - x").
func (u *UnaryOperator) String() string {
	return u.op.String() + " " + u.expr.String()
}

func (u *UnaryOperator) Gen(ctx *Context, out io.Writer) Expression {
	reduced := u.expr.Reduce(ctx, out)
	return &UnaryOperator{op: u.op, expr: reduced, typ: u.typ}
}

func (u *UnaryOperator) Reduce(ctx *Context, out io.Writer) Expression {
	return reduceViaTemp(ctx, out, u.Gen(ctx, out))
}

func (u *UnaryOperator) Jumping(_ *Context, out io.Writer, to, from string) {
	jumpingFromValue(u, out, to, from)
}
