package ir

import (
	"errors"
	"io"

	"github.com/cwbudde/tacc/internal/types"
)

// Set is a scalar assignment: id = expr.
type Set struct {
	baseStatement
	id   *Identifier
	expr Expression
}

// NewSet builds id = expr. Fails unless both sides are numeric, or both
// are bool; assigning a bool into a numeric slot (or the reverse) is a
// type error, and arrays can never appear on either side of Set (they
// go through SetElem instead).
func NewSet(id *Identifier, expr Expression) (*Set, error) {
	if !checkAssign(id.Type(), expr.Type()) {
		return nil, errors.New("type error")
	}
	return &Set{id: id, expr: expr}, nil
}

func checkAssign(left, right Type) bool {
	if types.IsNumeric(left) && types.IsNumeric(right) {
		return true
	}
	return left == types.Bool && right == types.Bool
}

func (s *Set) Gen(ctx *Context, out io.Writer, _, _ string) {
	emitLine(out, "%s = %s", s.id.String(), s.expr.Gen(ctx, out).String())
}

// SetElem is an array-element assignment: arr[ index ] = expr.
type SetElem struct {
	baseStatement
	array *Identifier
	index Expression
	expr  Expression
}

// NewSetElem builds access.Array()[ access.Offset() ] = expr from a
// parsed Access node. Fails unless both sides are numeric scalars.
func NewSetElem(access *Access, expr Expression) (*SetElem, error) {
	if types.IsArray(access.Type()) || types.IsArray(expr.Type()) {
		return nil, errors.New("type error")
	}
	if !types.IsNumeric(access.Type()) || !types.IsNumeric(expr.Type()) {
		return nil, errors.New("type error")
	}
	return &SetElem{array: access.Array(), index: access.Offset(), expr: expr}, nil
}

func (s *SetElem) Gen(ctx *Context, out io.Writer, _, _ string) {
	index := s.index.Reduce(ctx, out).String()
	value := s.expr.Reduce(ctx, out).String()
	emitLine(out, "%s[ %s ] = %s", s.array.String(), index, value)
}
