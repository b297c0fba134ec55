package lexer

import (
	"vb6cst/internal/diag"
	"vb6cst/internal/token"
)

// scanString consumes one string literal. VB6 strings double the quote
// to embed it: "A""B" is one literal. The scan tracks how many plain
// quotes it has seen; at two the literal is complete unless the very
// next byte is another quote, which reopens it. A backslash escapes the
// following byte. A raw CR or LF always ends the scan, since a string
// cannot span lines; if the closing quote never came, that is an
// unterminated literal.
func (lx *Lexer) scanString() {
	m := lx.s.Mark()
	quotes := 0
	escaped := false
	for !lx.s.IsEmpty() {
		b := lx.s.PeekByte()
		if b == '\r' || b == '\n' {
			break
		}
		if escaped {
			escaped = false
			lx.s.TakeCount(1)
			continue
		}
		if quotes == 2 {
			if b != '"' {
				break
			}
			// Doubled quote: the previous one was an escape.
			quotes = 1
			lx.s.TakeCount(1)
			continue
		}
		switch b {
		case '"':
			quotes++
		case '\\':
			escaped = true
		}
		lx.s.TakeCount(1)
	}
	sp := lx.s.SpanFrom(m)
	lx.push(token.StringLiteral, sp)
	if quotes < 2 {
		lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
}
