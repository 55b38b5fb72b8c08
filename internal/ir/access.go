package ir

import (
	"io"

	"github.com/cwbudde/tacc/internal/token"
)

// Access is an array-element reference: the declared array Identifier
// plus a byte-offset expression computed from the index chain. Its
// textual form is "arr[ offset ]"; the parser builds the offset
// expression by multiplying each index by its element's width and
// summing across dimensions.
type Access struct {
	array  *Identifier
	offset Expression
	typ    Type
}

// NewAccess builds a reference to array at the given byte offset,
// yielding a value of type typ (the array's element type).
func NewAccess(array *Identifier, offset Expression, typ Type) *Access {
	return &Access{array: array, offset: offset, typ: typ}
}

func (a *Access) Array() *Identifier { return a.array }
func (a *Access) Offset() Expression { return a.offset }

func (a *Access) Tag() token.Tag { return token.INDEX }
func (a *Access) Type() Type     { return a.typ }

func (a *Access) String() string {
	return a.array.String() + "[ " + a.offset.String() + " ]"
}

func (a *Access) Gen(ctx *Context, out io.Writer) Expression {
	return &Access{array: a.array, offset: a.offset.Reduce(ctx, out), typ: a.typ}
}

func (a *Access) Reduce(ctx *Context, out io.Writer) Expression {
	return reduceViaTemp(ctx, out, a.Gen(ctx, out))
}

// Jumping tests the array element's reduced value rather than its
// syntactic form, since "arr[ idx ]" is not itself a usable boolean test
// without first loading it into a temporary.
func (a *Access) Jumping(ctx *Context, out io.Writer, to, from string) {
	reduced := a.Reduce(ctx, out)
	jumpingTest(out, reduced.String(), to, from)
}
