// Package symbols implements the scoped identifier table used while parsing:
// a chain of frames, each mapping a token to the Identifier it was declared
// with.
package symbols

import "github.com/cwbudde/tacc/internal/token"

// Ident is the minimal view of an internal/ir.Identifier that symbols needs.
// internal/ir depends on symbols for nothing, so this interface lets
// symbols avoid importing ir; ir's Identifier implements it trivially.
type Ident interface {
	Token() token.Token
}

// Environment is one lexical scope. Get walks outward through parent scopes;
// Put always defines in the local frame, so a nested declaration shadows an
// outer one without disturbing it.
type Environment struct {
	parent *Environment
	table  map[token.Token]Ident
}

// NewEnvironment creates a scope nested inside parent. parent may be nil for
// the outermost scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, table: make(map[token.Token]Ident)}
}

// Put defines tok in the local frame, shadowing any outer declaration of the
// same token.
func (e *Environment) Put(tok token.Token, id Ident) {
	e.table[tok] = id
}

// Get looks up tok in this frame, then its parent, and so on. It returns
// (nil, false) if tok is declared nowhere in the chain.
func (e *Environment) Get(tok token.Token) (Ident, bool) {
	for env := e; env != nil; env = env.parent {
		if id, ok := env.table[tok]; ok {
			return id, true
		}
	}
	return nil, false
}

// Parent returns the enclosing scope, or nil at the outermost scope.
func (e *Environment) Parent() *Environment {
	return e.parent
}
