package parser

import (
	"github.com/cwbudde/tacc/internal/ir"
	"github.com/cwbudde/tacc/internal/symbols"
	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// block parses "{ decls stmts }", opening a nested scope for the
// declarations and restoring the enclosing one on exit. The scope only
// affects name resolution; it has no effect on code generation.
func (p *Parser) block() (ir.Statement, error) {
	if err := p.match(token.Tag('{')); err != nil {
		return nil, err
	}
	saved := p.top
	p.top = symbols.NewEnvironment(p.top)

	if err := p.decls(); err != nil {
		return nil, err
	}
	stmt, err := p.statements()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.Tag('}')); err != nil {
		return nil, err
	}
	p.top = saved
	return stmt, nil
}

// decls parses zero or more "type ident;" declarations, assigning each a
// monotonically increasing byte offset (never reset within a
// compilation, matching the reference's single used_ counter).
func (p *Parser) decls() error {
	for p.lookahead.Tag() == token.BASIC {
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		name, ok := p.lookahead.(*token.Word)
		if !ok {
			return p.errorf("syntax error")
		}
		if err := p.match(token.IDENT); err != nil {
			return err
		}
		if err := p.match(token.Tag(';')); err != nil {
			return err
		}
		id := ir.NewIdentifier(name, typ, p.used)
		p.top.Put(name, id)
		p.used += typ.Width()
	}
	return nil
}

// parseType parses a primitive type name optionally followed by one or
// more "[n]" array dimensions.
func (p *Parser) parseType() (types.Type, error) {
	basic, ok := p.lookahead.(types.Type)
	if !ok {
		return nil, p.errorf("syntax error")
	}
	if err := p.match(token.BASIC); err != nil {
		return nil, err
	}
	if p.lookahead.Tag() != token.Tag('[') {
		return basic, nil
	}
	return p.dimension(basic)
}

// dimension parses a chain of "[n]" suffixes, resolving the innermost
// dimension first so "int[2][3]" means an array of 2 elements each of
// type int[3] (C-style row-major nesting), matching the reference's
// recursive structure: the outer dimension wraps whatever type the rest
// of the chain resolves to.
func (p *Parser) dimension(elem types.Type) (types.Type, error) {
	if err := p.match(token.Tag('[')); err != nil {
		return nil, err
	}
	lit, ok := p.lookahead.(*token.IntLiteral)
	if !ok {
		return nil, p.errorf("syntax error")
	}
	if err := p.match(token.INT); err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(']')); err != nil {
		return nil, err
	}
	if p.lookahead.Tag() == token.Tag('[') {
		var err error
		elem, err = p.dimension(elem)
		if err != nil {
			return nil, err
		}
	}
	return types.NewArray(int(lit.Value), elem), nil
}
