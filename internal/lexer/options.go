package lexer

import (
	"vb6cst/internal/diag"
	"vb6cst/internal/source"
)

// Options configures a single lex run.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped, but lexing still continues (the Unknown fallback makes
	// every input tokenizable).
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
