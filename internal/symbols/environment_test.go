package symbols

import (
	"testing"

	"github.com/cwbudde/tacc/internal/token"
)

type testIdent struct {
	tok token.Token
}

func (t testIdent) Token() token.Token { return t.tok }

func TestEnvironmentLocalLookup(t *testing.T) {
	env := NewEnvironment(nil)
	tok := token.NewWord("x", token.IDENT)
	id := testIdent{tok: tok}
	env.Put(tok, id)

	got, ok := env.Get(tok)
	if !ok {
		t.Fatalf("expected %q to be found", tok.String())
	}
	if got.Token() != tok {
		t.Fatalf("got wrong identifier back")
	}
}

func TestEnvironmentWalksParentChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outerTok := token.NewWord("n", token.IDENT)
	outer.Put(outerTok, testIdent{tok: outerTok})

	inner := NewEnvironment(outer)
	if _, ok := inner.Get(outerTok); !ok {
		t.Fatalf("expected inner scope to see outer declaration")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	tok := token.NewWord("x", token.IDENT)
	outerID := testIdent{tok: tok}
	outer.Put(tok, outerID)

	inner := NewEnvironment(outer)
	innerID := testIdent{tok: tok}
	inner.Put(tok, innerID)

	got, ok := inner.Get(tok)
	if !ok {
		t.Fatalf("expected shadowed declaration to be found")
	}
	if got != Ident(innerID) {
		t.Fatalf("expected inner declaration to shadow outer")
	}

	outerGot, ok := outer.Get(tok)
	if !ok || outerGot != Ident(outerID) {
		t.Fatalf("outer scope should be unaffected by inner shadowing")
	}
}

func TestEnvironmentUndeclared(t *testing.T) {
	env := NewEnvironment(nil)
	if _, ok := env.Get(token.NewWord("missing", token.IDENT)); ok {
		t.Fatalf("expected undeclared token to be not found")
	}
}
