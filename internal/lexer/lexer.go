// Package lexer scans source text into the tokens defined by
// internal/token: reserved words, composite operators, identifiers,
// numeric literals, and bare punctuation.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/cwbudde/tacc/internal/token"
	"github.com/cwbudde/tacc/internal/types"
)

// Lexer scans a single input stream into a sequence of tokens. It is not
// safe for concurrent use; a fresh Lexer is created per compilation.
type Lexer struct {
	src   *bufio.Reader
	words map[string]token.Token
	peek  rune
	atEOF bool
	line  int
}

// New returns a Lexer reading from src, with the reserved-word table
// populated in the same order as the reference implementation: control
// keywords, then the two boolean literals, then the four primitive
// types. Every reserved spelling is distinct, so the order has no effect
// on what Scan returns; it is kept only for faithfulness.
func New(src io.Reader) *Lexer {
	l := &Lexer{
		src:   bufio.NewReader(src),
		words: make(map[string]token.Token),
		peek:  ' ',
		line:  1,
	}
	l.reserve(token.IfWord)
	l.reserve(token.ElseWord)
	l.reserve(token.WhileWord)
	l.reserve(token.DoWord)
	l.reserve(token.BreakWord)
	l.reserve(token.TrueWord)
	l.reserve(token.FalseWord)
	// Reserved as their Type themselves, not bare Words: the parser needs
	// a type() assertion to succeed on whatever the lexer hands back for
	// "int", "float", "char" and "bool".
	l.reserve(types.Int)
	l.reserve(types.Float)
	l.reserve(types.Bool)
	l.reserve(types.Char)
	return l
}

func (l *Lexer) reserve(w token.Token) {
	l.words[w.String()] = w
}

// Line returns the source line the lexer is currently scanning (1-based),
// for building diagnostics.
func (l *Lexer) Line() int { return l.line }

func (l *Lexer) readch() {
	ch, _, err := l.src.ReadRune()
	if err != nil {
		l.peek = 0
		l.atEOF = true
		return
	}
	l.peek = ch
}

// readchExpect advances once and reports whether the new peek rune
// matches want, consuming it (resetting peek to a space) on success so
// the next Scan starts clean. This mirrors the reference's two-character
// operator lookahead (&&, ||, ==, !=, <=, >=).
func (l *Lexer) readchExpect(want rune) bool {
	l.readch()
	if l.peek != want {
		return false
	}
	l.peek = ' '
	return true
}

// Scan returns the next token, or token.EOFWord once the input is
// exhausted.
func (l *Lexer) Scan() token.Token {
	for !l.atEOF {
		switch l.peek {
		case ' ', '\t', '\r':
			l.readch()
			continue
		case '\n':
			l.line++
			l.readch()
			continue
		}
		break
	}
	if l.atEOF {
		return token.EOFWord
	}

	switch l.peek {
	case '&':
		if l.readchExpect('&') {
			return token.AndWord
		}
		return l.singleChar('&')
	case '|':
		if l.readchExpect('|') {
			return token.OrWord
		}
		return l.singleChar('|')
	case '=':
		if l.readchExpect('=') {
			return token.EqWord
		}
		return l.singleChar('=')
	case '!':
		if l.readchExpect('=') {
			return token.NeWord
		}
		return l.singleChar('!')
	case '<':
		if l.readchExpect('=') {
			return token.LeWord
		}
		return l.singleChar('<')
	case '>':
		if l.readchExpect('=') {
			return token.GeWord
		}
		return l.singleChar('>')
	}

	if unicode.IsDigit(l.peek) {
		return l.scanNumber()
	}
	if unicode.IsLetter(l.peek) {
		return l.scanWord()
	}

	tok := token.Char(l.peek)
	l.peek = ' '
	return tok
}

// singleChar returns ch as its own bare-punctuation token for the
// two-character operators' non-matching fallback. peek already holds the
// character after ch (read by readchExpect) and is left in place, so the
// next Scan call starts from it.
func (l *Lexer) singleChar(ch rune) token.Token {
	return token.Char(ch)
}

func (l *Lexer) scanNumber() token.Token {
	var value int64
	for unicode.IsDigit(l.peek) {
		value = 10*value + int64(l.peek-'0')
		l.readch()
	}
	if l.peek != '.' {
		return token.NewInt(value)
	}
	dvalue := float64(value)
	power := 10.0
	for {
		l.readch()
		if l.atEOF || !unicode.IsDigit(l.peek) {
			break
		}
		dvalue += float64(l.peek-'0') / power
		power *= 10.0
	}
	return token.NewReal(dvalue)
}

func (l *Lexer) scanWord() token.Token {
	var sb strings.Builder
	for !l.atEOF && (unicode.IsLetter(l.peek) || unicode.IsDigit(l.peek)) {
		sb.WriteRune(l.peek)
		l.readch()
	}
	text := sb.String()
	if w, ok := l.words[text]; ok {
		return w
	}
	w := token.NewWord(text, token.IDENT)
	l.words[text] = w
	return w
}
