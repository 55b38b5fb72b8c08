package parser

import (
	"github.com/cwbudde/tacc/internal/ir"
	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// boolean parses the lowest-precedence expression level: a chain of "||"
// terms. Deliberately not the textbook grammar: each "||" operand to the
// right of the first is parsed by relational(), not join(), so
// "a || b && c" associates as "a || (b && c)" only incidentally, because
// relational never descends back into join. This is preserved exactly as
// observed in the reference implementation, not "fixed" to re-enter
// join().
func (p *Parser) boolean() (ir.Expression, error) {
	expr, err := p.join()
	if err != nil {
		return nil, err
	}
	for p.lookahead.Tag() == token.OR {
		op := p.lookahead
		p.move()
		rhs, err := p.relational()
		if err != nil {
			return nil, err
		}
		expr, err = ir.NewOr(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
	}
	return expr, nil
}

// join parses a chain of "&&" terms, same associativity quirk as
// boolean: its right operand is relational(), not equality().
func (p *Parser) join() (ir.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.lookahead.Tag() == token.AND {
		op := p.lookahead
		p.move()
		rhs, err := p.relational()
		if err != nil {
			return nil, err
		}
		expr, err = ir.NewAnd(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
	}
	return expr, nil
}

// equality parses a chain of "==" / "!=" comparisons.
func (p *Parser) equality() (ir.Expression, error) {
	expr, err := p.relational()
	if err != nil {
		return nil, err
	}
	for p.lookahead.Tag() == token.EQ || p.lookahead.Tag() == token.NE {
		op := p.lookahead
		p.move()
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		expr, err = ir.NewRelational(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
	}
	return expr, nil
}

// relational parses at most one <, <=, >, >= comparison: these do not
// chain (unlike ==, &&, ||).
func (p *Parser) relational() (ir.Expression, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	switch p.lookahead.Tag() {
	case token.Tag('<'), token.LE, token.GE, token.Tag('>'):
		op := p.lookahead
		p.move()
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		rel, err := ir.NewRelational(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		return rel, nil
	default:
		return expr, nil
	}
}

// expression parses a chain of "+"/"-" terms.
func (p *Parser) expression() (ir.Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.lookahead.Tag() == token.Tag('+') || p.lookahead.Tag() == token.Tag('-') {
		op := p.lookahead
		p.move()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		expr, err = ir.NewArithmetic(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
	}
	return expr, nil
}

// term parses a chain of "*"/"/" factors.
func (p *Parser) term() (ir.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.lookahead.Tag() == token.Tag('*') || p.lookahead.Tag() == token.Tag('/') {
		op := p.lookahead
		p.move()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr, err = ir.NewArithmetic(op, expr, rhs)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
	}
	return expr, nil
}

// unary parses a prefix "-" or "!", otherwise falls through to factor.
func (p *Parser) unary() (ir.Expression, error) {
	switch p.lookahead.Tag() {
	case token.Tag('-'):
		p.move()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		u, err := ir.NewUnaryOperator(token.Minus, operand)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		return u, nil
	case token.Tag('!'):
		op := p.lookahead
		p.move()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n, err := ir.NewNot(op, operand)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		return n, nil
	default:
		return p.factor()
	}
}

// factor parses the atoms of the expression grammar: a parenthesized
// boolean expression, a literal, or an identifier (optionally followed
// by an index chain).
func (p *Parser) factor() (ir.Expression, error) {
	switch p.lookahead.Tag() {
	case token.Tag('('):
		p.move()
		expr, err := p.boolean()
		if err != nil {
			return nil, err
		}
		if err := p.match(token.Tag(')')); err != nil {
			return nil, err
		}
		return expr, nil
	case token.INT:
		c := ir.NewConstant(p.lookahead, types.Int)
		p.move()
		return c, nil
	case token.REAL:
		c := ir.NewConstant(p.lookahead, types.Float)
		p.move()
		return c, nil
	case token.TRUE:
		p.move()
		return ir.True, nil
	case token.FALSE:
		p.move()
		return ir.False, nil
	case token.IDENT:
		name := p.lookahead
		entry, ok := p.top.Get(name)
		if !ok {
			return nil, p.errorf("%s undeclared", name.String())
		}
		id := entry.(*ir.Identifier)
		p.move()
		if p.lookahead.Tag() != token.Tag('[') {
			return id, nil
		}
		return p.offset(id)
	default:
		return nil, p.errorf("syntax error")
	}
}

// offset parses a chain of one or more "[ boolean() ]" index expressions
// following an array identifier, folding them into a single byte-offset
// expression: each dimension's index is multiplied by its element's
// width, and outer dimensions are summed on top of inner ones.
func (p *Parser) offset(id *ir.Identifier) (*ir.Access, error) {
	typ, ok := id.Type().(*types.Array)
	if !ok {
		return nil, p.errorf("%s is not an array", id.String())
	}

	if err := p.match(token.Tag('[')); err != nil {
		return nil, err
	}
	index, err := p.boolean()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(']')); err != nil {
		return nil, err
	}

	width := ir.NewIntConstant(int64(typ.Elem.Width()))
	location, err := ir.NewArithmetic(token.Char('*'), index, width)
	if err != nil {
		return nil, p.errorf("%s", err.Error())
	}
	elemType := typ.Elem

	for p.lookahead.Tag() == token.Tag('[') {
		nested, ok := elemType.(*types.Array)
		if !ok {
			return nil, p.errorf("too many dimensions in %s", id.String())
		}
		if err := p.match(token.Tag('[')); err != nil {
			return nil, err
		}
		index, err = p.boolean()
		if err != nil {
			return nil, err
		}
		if err := p.match(token.Tag(']')); err != nil {
			return nil, err
		}
		width = ir.NewIntConstant(int64(nested.Elem.Width()))
		term, err := ir.NewArithmetic(token.Char('*'), index, width)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		location, err = ir.NewArithmetic(token.Char('+'), location, term)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		elemType = nested.Elem
	}

	return ir.NewAccess(id, location, elemType), nil
}
