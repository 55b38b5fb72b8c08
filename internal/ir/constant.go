package ir

import (
	"io"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// Constant is a literal value: an integer, a real, or one of the two
// boolean singletons True/False. Its Gen/Reduce are both identity; only
// True and False ever emit code from Jumping, and only when the caller
// actually asked for the corresponding branch.
type Constant struct {
	tok token.Token
	typ Type
}

// NewConstant wraps tok (an IntLiteral or RealLiteral) as a Constant of
// type typ.
func NewConstant(tok token.Token, typ Type) *Constant {
	return &Constant{tok: tok, typ: typ}
}

// NewIntConstant builds an int-typed Constant directly from a value,
// bypassing the lexer. Used by the parser when synthesizing the
// element-width multiplier for an array index expression.
func NewIntConstant(value int64) *Constant {
	return &Constant{tok: token.NewInt(value), typ: types.Int}
}

// True and False are the two singleton boolean constants; Jumping checks
// against them by identity, exactly like the reference's kTrue/kFalse.
var (
	True  = &Constant{tok: token.TrueWord, typ: types.Bool}
	False = &Constant{tok: token.FalseWord, typ: types.Bool}
)

func (c *Constant) Tag() token.Tag    { return c.tok.Tag() }
func (c *Constant) String() string    { return c.tok.String() }
func (c *Constant) Type() Type        { return c.typ }
func (c *Constant) Gen(_ *Context, _ io.Writer) Expression    { return c }
func (c *Constant) Reduce(_ *Context, _ io.Writer) Expression { return c }

// Jumping emits "goto to" when c is the True singleton and to is set, or
// "goto from" when c is the False singleton and from is set. Any other
// constant emits nothing: a condition that is always some other fixed
// value never arises from this grammar.
func (c *Constant) Jumping(_ *Context, out io.Writer, to, from string) {
	if c == True && to != "" {
		emitLine(out, "goto %s", to)
	} else if c == False && from != "" {
		emitLine(out, "goto %s", from)
	}
}
