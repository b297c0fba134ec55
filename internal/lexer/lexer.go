// Package lexer turns VB6 source bytes into a lossless token stream.
//
// Every byte of the input ends up inside exactly one token, whitespace
// and comments included, so concatenating the token spans reproduces
// the file verbatim. Input that matches nothing is consumed one byte at
// a time as Unknown tokens with a diagnostic each; the lexer therefore
// never fails and never stalls.
package lexer

import (
	"fmt"

	"vb6cst/internal/diag"
	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// Lexer holds the state of a single run over one file.
type Lexer struct {
	s    *source.Stream
	opts Options
	toks []token.Token
}

// Lex tokenizes f and returns the full lossless stream, trivia included.
func Lex(f *source.File, opts Options) *token.Stream {
	lx := &Lexer{
		s:    source.NewStream(f),
		opts: opts,
		// Shortest real-world tokens average a few bytes each.
		toks: make([]token.Token, 0, len(f.Content)/4+8),
	}
	lx.run()
	return token.NewStream(f, lx.toks)
}

// LexWithoutWhitespace tokenizes f and drops Whitespace tokens. Newlines
// and comments stay: statements are line-oriented, and comments carry
// attributes tools care about.
func LexWithoutWhitespace(f *source.File, opts Options) *token.Stream {
	return Lex(f, opts).WithoutWhitespace()
}

// LexBag is a convenience wrapper collecting diagnostics into a fresh bag.
func LexBag(f *source.File, maxDiags int) (*token.Stream, *diag.Bag) {
	bag := diag.NewBag(maxDiags)
	ts := Lex(f, Options{Reporter: diag.BagReporter{Bag: bag}})
	return ts, bag
}

func (lx *Lexer) run() {
	for !lx.s.IsEmpty() {
		before := lx.s.Offset()
		lx.next()
		if lx.s.Offset() == before {
			// Cannot happen: the Unknown fallback always consumes one
			// byte. Guard anyway so a future edit cannot loop forever.
			lx.s.TakeCount(1)
		}
	}
}

// next consumes exactly one token. Recognition order matters: comments
// before strings, strings before date literals, keywords before symbols
// and identifiers, and Unknown dead last.
func (lx *Lexer) next() {
	if sp, ok := lx.s.TakeNewline(); ok {
		lx.push(token.Newline, sp)
		return
	}
	if lx.s.PeekByte() == '\'' {
		lx.scanLineComment(token.EndOfLineComment)
		return
	}
	if lx.s.PeekLiteral("REM", source.CaseInsensitive) {
		lx.scanLineComment(token.RemComment)
		return
	}
	if lx.s.PeekByte() == '"' {
		lx.scanString()
		return
	}
	if lx.s.PeekByte() == '#' {
		if lx.scanDateTime() {
			return
		}
	}
	if lx.scanKeyword() {
		return
	}
	if lx.scanSymbol() {
		return
	}
	if source.IsDigit(lx.s.PeekByte()) {
		lx.scanNumber()
		return
	}
	if source.IsLetter(lx.s.PeekByte()) {
		sp, _ := lx.s.TakeIdentChars()
		lx.push(token.Identifier, sp)
		return
	}
	if sp, ok := lx.s.TakeSpaces(); ok {
		lx.push(token.Whitespace, sp)
		return
	}
	sp, _ := lx.s.TakeCount(1)
	lx.push(token.Unknown, sp)
	lx.report(diag.LexUnknownToken, sp,
		fmt.Sprintf("unknown token %q", lx.s.File.Content[sp.Start:sp.End]))
}

func (lx *Lexer) push(k token.Kind, sp source.Span) {
	lx.toks = append(lx.toks, token.Token{Kind: k, Span: sp})
}

// scanLineComment consumes the comment body up to the newline, then
// emits the newline as its own token so line structure stays visible to
// the parser.
func (lx *Lexer) scanLineComment(kind token.Kind) {
	content, nl, hasNL, _ := lx.s.TakeUntilNewline()
	lx.push(kind, content)
	if hasNL {
		lx.push(token.Newline, nl)
	}
}

// scanKeyword tries every keyword in table order. The table puts longer
// spellings before their prefixes, so first match wins.
func (lx *Lexer) scanKeyword() bool {
	for _, kw := range token.Keywords {
		if sp, ok := lx.takeWord(kw.Spelling); ok {
			lx.push(kw.Kind, sp)
			return true
		}
	}
	return false
}

// takeWord consumes spelling case-insensitively, but only when it is
// not immediately followed by an identifier character. "Done" must not
// yield the keyword "Do".
func (lx *Lexer) takeWord(spelling string) (source.Span, bool) {
	n := uint32(len(spelling))
	rem := lx.s.Remaining()
	if rem < n {
		return lx.s.EmptySpan(), false
	}
	if rem > n {
		if !lx.s.PeekLiteral(spelling, source.CaseInsensitive) {
			return lx.s.EmptySpan(), false
		}
		if b, ok := lx.s.PeekByteAt(n); ok && source.IsIdentChar(b) {
			return lx.s.EmptySpan(), false
		}
	}
	return lx.s.Take(spelling, source.CaseInsensitive)
}

func (lx *Lexer) scanSymbol() bool {
	for _, sym := range token.Symbols {
		if sp, ok := lx.s.Take(sym.Literal, source.CaseSensitive); ok {
			lx.push(sym.Kind, sp)
			return true
		}
	}
	return false
}

// scanNumber consumes one numeric literal: a digit run, an optional
// fraction, an optional signed exponent (E or D, VB6 allows both) and
// an optional type suffix. The whole literal is one Number token.
func (lx *Lexer) scanNumber() {
	m := lx.s.Mark()
	lx.s.TakeDigits()
	if lx.s.PeekByte() == '.' {
		if b, ok := lx.s.PeekByteAt(1); ok && source.IsDigit(b) {
			lx.s.TakeCount(1)
			lx.s.TakeDigits()
		}
	}
	switch lx.s.PeekByte() {
	case 'E', 'e', 'D', 'd':
		em := lx.s.Mark()
		lx.s.TakeCount(1)
		if b := lx.s.PeekByte(); b == '+' || b == '-' {
			lx.s.TakeCount(1)
		}
		if _, ok := lx.s.TakeDigits(); !ok {
			// Not an exponent after all; the letter belongs to whatever
			// comes next.
			lx.s.Reset(em)
		}
	}
	switch lx.s.PeekByte() {
	case '%', '&', '!', '@':
		lx.s.TakeCount(1)
	case '#':
		// A number right after a bare `#` is the inside of a failed
		// date literal; the closing `#` is a symbol, not a Double
		// suffix.
		if n := len(lx.toks); n == 0 || lx.toks[n-1].Kind != token.SymOctothorpe {
			lx.s.TakeCount(1)
		}
	}
	lx.push(token.Number, lx.s.SpanFrom(m))
}
