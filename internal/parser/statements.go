package parser

import (
	"github.com/cwbudde/tacc/internal/ir"
	"github.com/cwbudde/tacc/internal/token"
)

// statements parses zero or more statements up to a closing "}",
// folding them right-associatively into a StatementSequence chain ending
// in ir.Null.
func (p *Parser) statements() (ir.Statement, error) {
	if p.lookahead.Tag() == token.Tag('}') {
		return ir.Null, nil
	}
	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	rest, err := p.statements()
	if err != nil {
		return nil, err
	}
	return ir.NewStatementSequence(first, rest), nil
}

// statement parses a single statement: an empty statement, an if/else,
// a while, a do-while, a break, a nested block, or an assignment.
func (p *Parser) statement() (ir.Statement, error) {
	switch p.lookahead.Tag() {
	case token.Tag(';'):
		p.move()
		return ir.Null, nil

	case token.IF:
		return p.ifStatement()

	case token.WHILE:
		return p.whileStatement()

	case token.DO:
		return p.doStatement()

	case token.BREAK:
		p.move()
		if err := p.match(token.Tag(';')); err != nil {
			return nil, err
		}
		brk, err := ir.NewBreak(p.ctx)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		return brk, nil

	case token.Tag('{'):
		return p.block()

	default:
		return p.assign()
	}
}

func (p *Parser) ifStatement() (ir.Statement, error) {
	p.move()
	if err := p.match(token.Tag('(')); err != nil {
		return nil, err
	}
	expr, err := p.boolean()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(')')); err != nil {
		return nil, err
	}
	thenStmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if p.lookahead.Tag() != token.ELSE {
		ifStmt, err := ir.NewIf(expr, thenStmt)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		return ifStmt, nil
	}
	p.move()
	elseStmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	result, err := ir.NewElse(expr, thenStmt, elseStmt)
	if err != nil {
		return nil, p.errorf("%s", err.Error())
	}
	return result, nil
}

// whileStatement implements the two-phase construction a "while" loop
// needs: the loop node is created empty and pushed as the innermost
// enclosing loop before its condition or body are parsed, so a Break
// nested anywhere inside the body (including inside further nested
// blocks) can capture a reference to it. Init fills in the condition and
// body once both are known, then the loop is popped.
func (p *Parser) whileStatement() (ir.Statement, error) {
	p.move()
	loop := ir.NewWhile()
	p.ctx.PushLoop(loop)
	defer p.ctx.PopLoop()

	if err := p.match(token.Tag('(')); err != nil {
		return nil, err
	}
	expr, err := p.boolean()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(')')); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if err := loop.Init(expr, body); err != nil {
		return nil, p.errorf("%s", err.Error())
	}
	return loop, nil
}

// doStatement mirrors whileStatement's two-phase construction for
// "do stmt while (expr);".
func (p *Parser) doStatement() (ir.Statement, error) {
	p.move()
	loop := ir.NewDo()
	p.ctx.PushLoop(loop)
	defer p.ctx.PopLoop()

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.match(token.Tag('(')); err != nil {
		return nil, err
	}
	expr, err := p.boolean()
	if err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(')')); err != nil {
		return nil, err
	}
	if err := p.match(token.Tag(';')); err != nil {
		return nil, err
	}
	if err := loop.Init(body, expr); err != nil {
		return nil, p.errorf("%s", err.Error())
	}
	return loop, nil
}

// assign parses "ident = boolean();" or "ident[ ... ] = boolean();".
func (p *Parser) assign() (ir.Statement, error) {
	name := p.lookahead
	if err := p.match(token.IDENT); err != nil {
		return nil, err
	}
	entry, ok := p.top.Get(name)
	if !ok {
		return nil, p.errorf("%s undeclared", name.String())
	}
	id := entry.(*ir.Identifier)

	var stmt ir.Statement
	if p.lookahead.Tag() == token.Tag('=') {
		p.move()
		expr, err := p.boolean()
		if err != nil {
			return nil, err
		}
		set, err := ir.NewSet(id, expr)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		stmt = set
	} else {
		access, err := p.offset(id)
		if err != nil {
			return nil, err
		}
		if err := p.match(token.Tag('=')); err != nil {
			return nil, err
		}
		expr, err := p.boolean()
		if err != nil {
			return nil, err
		}
		setElem, err := ir.NewSetElem(access, expr)
		if err != nil {
			return nil, p.errorf("%s", err.Error())
		}
		stmt = setElem
	}
	if err := p.match(token.Tag(';')); err != nil {
		return nil, err
	}
	return stmt, nil
}
