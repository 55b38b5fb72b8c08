package ir

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

func mustIdent(t *testing.T, name string, typ Type, offset int) *Identifier {
	t.Helper()
	return NewIdentifier(token.NewWord(name, token.IDENT), typ, offset)
}

func TestArithmeticReduceEmitsTemp(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	i := mustIdent(t, "i", types.Int, 0)
	c := NewIntConstant(4)
	add, err := NewArithmetic(token.Char('+'), i, c)
	if err != nil {
		t.Fatalf("NewArithmetic: %v", err)
	}

	result := add.Reduce(ctx, &out)
	if result.String() != "t1" {
		t.Fatalf("expected reduce to yield t1, got %s", result.String())
	}
	if got := out.String(); got != "\tt1 = i + 4\n" {
		t.Fatalf("unexpected emission: %q", got)
	}
}

func TestArithmeticTypeErrorOnArray(t *testing.T) {
	arr := types.NewArray(10, types.Int)
	i := mustIdent(t, "i", types.Int, 0)
	a := mustIdent(t, "arr", arr, 4)
	if _, err := NewArithmetic(token.Char('+'), i, a); err == nil {
		t.Fatalf("expected error combining int with array")
	}
}

func TestUnaryOperatorRendersOperandAtEmit(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	x := mustIdent(t, "x", types.Int, 0)
	u, err := NewUnaryOperator(token.Minus, x)
	if err != nil {
		t.Fatalf("NewUnaryOperator: %v", err)
	}

	result := u.Reduce(ctx, &out)
	if result.String() != "t1" {
		t.Fatalf("expected t1, got %s", result.String())
	}
	if got := out.String(); got != "\tt1 = - x\n" {
		t.Fatalf("unexpected emission: %q", got)
	}
}

func TestAndShortCircuitsWithoutExtraLabel(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	a := mustIdent(t, "a", types.Bool, 0)
	b := mustIdent(t, "b", types.Bool, 1)
	and, err := NewAnd(token.AndWord, a, b)
	if err != nil {
		t.Fatalf("NewAnd: %v", err)
	}

	and.Jumping(ctx, &out, "Ltrue", "Lfalse")
	want := "\tiffalse a goto Lfalse\n\tif b goto Ltrue\n\tgoto Lfalse\n"
	if got := out.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestOrAllocatesLabelWhenToMissing(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	a := mustIdent(t, "a", types.Bool, 0)
	b := mustIdent(t, "b", types.Bool, 1)
	or, err := NewOr(token.OrWord, a, b)
	if err != nil {
		t.Fatalf("NewOr: %v", err)
	}

	// to == "", from == "Lout": Or must invent its own label for a
	// short-circuit success since there's no caller-provided "to".
	or.Jumping(ctx, &out, "", "Lout")
	got := out.String()
	if !strings.Contains(got, "if a goto L1") {
		t.Fatalf("expected short-circuit label L1, got %q", got)
	}
	if !strings.HasSuffix(got, "L1:") {
		t.Fatalf("expected trailing label definition, got %q", got)
	}
}

func TestNotSwapsLabels(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	a := mustIdent(t, "a", types.Bool, 0)
	not, err := NewNot(token.NewWord("!", token.Tag('!')), a)
	if err != nil {
		t.Fatalf("NewNot: %v", err)
	}
	not.Jumping(ctx, &out, "T", "F")
	want := "\tif a goto F\n\tgoto T\n"
	if got := out.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRelationalReducesBothSides(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	i := mustIdent(t, "i", types.Int, 0)
	c := NewIntConstant(10)
	rel, err := NewRelational(token.Char('<'), i, c)
	if err != nil {
		t.Fatalf("NewRelational: %v", err)
	}
	rel.Jumping(ctx, &out, "Lt", "Lf")
	want := "\tif i < 10 goto Lt\n\tgoto Lf\n"
	if got := out.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStatementSequenceSkipsNullSides(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	i := mustIdent(t, "i", types.Int, 0)
	set, err := NewSet(i, NewIntConstant(10))
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	seq := NewStatementSequence(set, Null)
	seq.Gen(ctx, &out, "B", "A")

	if got := out.String(); got != "\ti = 10\n" {
		t.Fatalf("expected no intervening label, got %q", got)
	}
	if ctx.labels != 0 {
		t.Fatalf("expected no label allocated, got %d", ctx.labels)
	}
}

func TestWhileBreakTargetsAfterLabel(t *testing.T) {
	ctx := NewContext()
	var out bytes.Buffer

	w := NewWhile()
	ctx.PushLoop(w)
	brk, err := NewBreak(ctx)
	if err != nil {
		t.Fatalf("NewBreak: %v", err)
	}
	body := NewStatementSequence(brk, Null)
	if err := w.Init(True, body); err != nil {
		t.Fatalf("Init: %v", err)
	}
	ctx.PopLoop()

	outer := NewStatementSequence(w, Null)
	begin := ctx.NewLabel()
	after := ctx.NewLabel()
	emitLabel(&out, begin)
	outer.Gen(ctx, &out, begin, after)
	emitLabel(&out, after)

	want := "L1:L3:\tgoto L2\n\tgoto L1\nL2:"
	if got := out.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBreakOutsideLoopErrors(t *testing.T) {
	ctx := NewContext()
	if _, err := NewBreak(ctx); err == nil {
		t.Fatalf("expected error for break outside any loop")
	}
}
