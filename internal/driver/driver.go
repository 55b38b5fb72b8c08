// Package driver wires a source reader through the lexer and parser into
// a complete three-address-code listing. It is the single entry point
// both the CLI and tests use to run a compilation end to end.
package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/tacc/internal/ir"
	"github.com/cwbudde/tacc/internal/lexer"
	"github.com/cwbudde/tacc/internal/parser"
)

// Compile reads a single compilation unit from src and returns its
// generated code. A fresh lexer, IR context and parser are created for
// every call; nothing is shared across compilations.
func Compile(src io.Reader) (string, error) {
	ctx := ir.NewContext()
	lex := lexer.New(src)
	p := parser.New(lex, ctx)
	return p.Program()
}

// CompileString is Compile for callers that already hold source text in
// memory, which is most tests.
func CompileString(src string) (string, error) {
	return Compile(strings.NewReader(src))
}

// CompileTraced is Compile, additionally writing a label/temporary
// counter summary to trace once compilation finishes. It never affects
// the returned listing; a nil trace behaves exactly like Compile.
func CompileTraced(src io.Reader, trace io.Writer) (string, error) {
	ctx := ir.NewContext()
	lex := lexer.New(src)
	p := parser.New(lex, ctx)
	listing, err := p.Program()
	if trace != nil {
		fmt.Fprintf(trace, "labels allocated: %d, temporaries allocated: %d\n", ctx.Labels(), ctx.Temps())
	}
	return listing, err
}
