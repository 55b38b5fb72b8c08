package ir

import (
	"io"
	"strconv"

	"github.com/cwbudde/tacc/internal/token"
)

// Temporary is a compiler-generated value-holding variable, numbered
// sequentially within a Context (t1, t2, ...). It is only ever created by
// Context.NewTemp, so its number is always unique within a compilation.
type Temporary struct {
	number int
	typ    Type
}

func (t *Temporary) Tag() token.Tag { return token.TEMP }
func (t *Temporary) String() string { return "t" + strconv.Itoa(t.number) }
func (t *Temporary) Type() Type     { return t.typ }
func (t *Temporary) Number() int    { return t.number }

func (t *Temporary) Gen(_ *Context, _ io.Writer) Expression    { return t }
func (t *Temporary) Reduce(_ *Context, _ io.Writer) Expression { return t }

func (t *Temporary) Jumping(_ *Context, out io.Writer, to, from string) {
	jumpingFromValue(t, out, to, from)
}
