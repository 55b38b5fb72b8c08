// Package types implements the primitive and array types of the source
// language: int, float, char, bool, and arrays over them.
package types

import (
	"fmt"

	"github.com/cwbudde/tacc/internal/token"
)

// Type is a source-language type. The four primitive types are process-wide
// singletons (Int, Float, Char, Bool); Array instances are created per
// declaration.
type Type interface {
	token.Token
	Width() int
}

// Basic is a primitive type: a tagged lexeme (so it can double as the BASIC
// token the lexer returns for "int", "float", "char", "bool") plus a byte
// width.
type Basic struct {
	*token.Word
	width int
}

func newBasic(lexeme string, width int) *Basic {
	return &Basic{Word: token.NewWord(lexeme, token.BASIC), width: width}
}

// Width returns the type's size in bytes.
func (b *Basic) Width() int { return b.width }

// The four primitive singletons. Equal compares against these by identity
// first, so every occurrence of "int" in a program shares the same Type.
var (
	Int   = newBasic("int", 4)
	Float = newBasic("float", 8)
	Char  = newBasic("char", 1)
	Bool  = newBasic("bool", 1)
)

// Array is a fixed-size array type. Its lexeme and tag mirror the "[]"
// index operator so an Array can stand in wherever a Type is expected.
type Array struct {
	*token.Word
	Elem     Type
	Count    int
	elemWide int
}

// NewArray builds an array of count elements of elem.
func NewArray(count int, elem Type) *Array {
	return &Array{
		Word:     token.NewWord("[]", token.INDEX),
		Elem:     elem,
		Count:    count,
		elemWide: elem.Width(),
	}
}

// Width is the total size of the array: element width times element count.
func (a *Array) Width() int { return a.elemWide * a.Count }

func (a *Array) String() string {
	return fmt.Sprintf("[%d] %s", a.Count, a.Elem.String())
}

// IsNumeric reports whether t is one of int, float, char. bool and arrays
// are never numeric.
func IsNumeric(t Type) bool {
	return t == Int || t == Float || t == Char
}

// IsArray reports whether t is an Array.
func IsArray(t Type) bool {
	_, ok := t.(*Array)
	return ok
}

// Equal compares two types by identity, or by shared lexeme, tag and width.
// Because Array's tag (INDEX) never matches a Basic's tag (BASIC), this
// already implies an Array is never equal to a non-array.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	return a.String() == b.String() && a.Tag() == b.Tag() && a.Width() == b.Width()
}

// Max implements the type-promotion rule used by arithmetic and unary
// expressions: the other type if one side is nil, nil if either side is
// non-numeric, float if either side is float, else int if either side is
// int, else char.
func Max(l, r Type) Type {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if !IsNumeric(l) || !IsNumeric(r) {
		return nil
	}
	if l == Float || r == Float {
		return Float
	}
	if l == Int || r == Int {
		return Int
	}
	return Char
}
