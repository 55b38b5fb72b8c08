package ir

import (
	"io"

	"github.com/cwbudde/tacc/internal/token"
)

// Identifier is a declared variable: a Word plus the type and stack
// offset it was declared with. Its Gen/Reduce are both identity — using
// an identifier's value never requires emitting any code.
type Identifier struct {
	word   *token.Word
	typ    Type
	offset int
}

// NewIdentifier builds an Identifier for word, declared with type typ at
// offset.
func NewIdentifier(word *token.Word, typ Type, offset int) *Identifier {
	return &Identifier{word: word, typ: typ, offset: offset}
}

func (id *Identifier) Tag() token.Tag { return id.word.Tag() }
func (id *Identifier) String() string { return id.word.String() }
func (id *Identifier) Type() Type     { return id.typ }
func (id *Identifier) Offset() int    { return id.offset }

// Token returns the underlying Word, satisfying internal/symbols.Ident so
// an Identifier can be stored directly in an Environment.
func (id *Identifier) Token() token.Token { return id.word }

func (id *Identifier) Gen(_ *Context, _ io.Writer) Expression    { return id }
func (id *Identifier) Reduce(_ *Context, _ io.Writer) Expression { return id }

func (id *Identifier) Jumping(_ *Context, out io.Writer, to, from string) {
	jumpingFromValue(id, out, to, from)
}
