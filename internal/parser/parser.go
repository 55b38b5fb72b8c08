// Package parser implements a recursive-descent, one-token-lookahead
// parser that drives internal/ir construction directly: there is no
// separate AST pass, each grammar rule builds (and type-checks) IR nodes
// as it recognizes them, exactly as the textbook translation scheme this
// front-end follows.
package parser

import (
	"fmt"
	"strings"

	"github.com/cwbudde/tacc/internal/cerr"
	"github.com/cwbudde/tacc/internal/ir"
	"github.com/cwbudde/tacc/internal/lexer"
	"github.com/cwbudde/tacc/internal/symbols"
	"github.com/cwbudde/tacc/internal/token"
)

// Parser recognizes one compilation unit (a single top-level block) and
// produces its three-address-code listing. It is not safe for
// concurrent use; a fresh Parser (and Context) is used per compilation.
type Parser struct {
	lex       *lexer.Lexer
	ctx       *ir.Context
	lookahead token.Token
	top       *symbols.Environment
	used      int
	err       error
}

// New returns a Parser scanning from lex, building IR against ctx.
func New(lex *lexer.Lexer, ctx *ir.Context) *Parser {
	p := &Parser{lex: lex, ctx: ctx}
	p.move()
	return p
}

func (p *Parser) move() {
	p.lookahead = p.lex.Scan()
}

// errorf records the first error encountered and returns it; once set,
// it is never overwritten, matching the "stop at first diagnostic, no
// recovery" error model.
func (p *Parser) errorf(format string, args ...any) error {
	if p.err == nil {
		p.err = cerr.New(p.lex.Line(), fmt.Sprintf(format, args...))
	}
	return p.err
}

func (p *Parser) match(tag token.Tag) error {
	if p.lookahead.Tag() == tag {
		p.move()
		return nil
	}
	return p.errorf("syntax error")
}

// Program parses the single top-level block and returns its complete
// three-address listing, wrapped in the begin/after labels the reference
// driver wraps every compilation unit in.
func (p *Parser) Program() (string, error) {
	p.top = symbols.NewEnvironment(nil)
	stmt, err := p.block()
	if err != nil {
		return "", err
	}
	begin := p.ctx.NewLabel()
	after := p.ctx.NewLabel()
	var out strings.Builder
	fmt.Fprintf(&out, "%s:", begin)
	stmt.Gen(p.ctx, &out, begin, after)
	fmt.Fprintf(&out, "%s:", after)
	return out.String(), nil
}
