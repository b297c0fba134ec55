// Package cst builds lossless concrete syntax trees for VB6 source.
//
// The tree keeps every token the lexer produced, trivia included, so
// the original file can be reconstructed from any tree exactly. The
// parser is line-oriented and error-tolerant: a line it cannot
// classify becomes an UnknownStatement wrapping the line's tokens,
// with a diagnostic, and parsing continues on the next line.
package cst

import (
	"fmt"

	"vb6cst/internal/diag"
	"vb6cst/internal/lexer"
	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// Parse lexes and parses src under the given file identity. The tree
// is nil only for empty input; any other input, malformed or binary,
// yields a best-effort tree plus diagnostics.
func Parse(path string, src []byte) (*Tree, *diag.Bag) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual(path, src))
	return ParseFile(f)
}

// ParseFile parses an already-registered source file.
func ParseFile(f *source.File) (*Tree, *diag.Bag) {
	return ParseFileLimit(f, diag.DefaultLimit)
}

// ParseFileLimit is ParseFile with an explicit diagnostic cap; zero
// means unlimited.
func ParseFileLimit(f *source.File, maxDiags int) (*Tree, *diag.Bag) {
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}
	ts := lexer.Lex(f, lexer.Options{Reporter: rep})
	if len(f.Content) == 0 {
		return nil, bag
	}
	return ParseStream(ts, rep), bag
}

// ParseStream builds a tree from a full lossless token stream.
func ParseStream(ts *token.Stream, rep diag.Reporter) *Tree {
	p := &parser{
		file: ts.File(),
		toks: ts.Tokens(),
		b:    NewBuilder(ts.File()),
		rep:  rep,
	}
	return p.parseModule()
}

type parser struct {
	file *source.File
	toks []token.Token
	pos  int
	b    *Builder
	rep  diag.Reporter
}

// eofKind is a sentinel outside every real token kind range.
const eofKind = token.Kind(0xffff)

func (p *parser) parseModule() *Tree {
	p.b.StartNode(KindRoot)
	for !p.atEnd() {
		if p.atTrivia() {
			p.bump()
			continue
		}
		p.parseStatement()
	}
	p.b.FinishNode()
	return p.b.Finish()
}

// parseStatement dispatches on the first significant token of a line.
// Every branch consumes at least one token.
func (p *parser) parseStatement() {
	switch p.cur() {
	case token.KwAttribute:
		p.parseLineStatement(KindAttributeStatement)
	case token.KwOption:
		p.parseLineStatement(KindOptionStatement)
	case token.KwSub:
		p.parseProcedure(KindSubStatement, token.KwSub)
	case token.KwFunction:
		p.parseProcedure(KindFunctionStatement, token.KwFunction)
	case token.KwProperty:
		p.parseProcedure(KindPropertyStatement, token.KwProperty)
	case token.KwDim:
		p.parseLineStatement(KindDimStatement)
	case token.KwConst:
		p.parseLineStatement(KindConstStatement)
	case token.KwReDim:
		p.parseLineStatement(KindReDimStatement)
	case token.KwPublic, token.KwPrivate, token.KwFriend, token.KwStatic:
		p.parseVisibilityLed()
	case token.KwIf:
		p.parseIf()
	case token.KwFor:
		p.parseFor()
	case token.KwDo:
		p.parseDo()
	case token.KwWhile:
		p.parseWhile()
	case token.KwExit:
		p.parseLineStatement(KindExitStatement)
	case token.KwCall:
		p.parseCallStatement(true)
	case token.KwLet:
		p.parseAssignment()
	case token.Identifier:
		if p.lineHasTopLevelAssign() {
			p.parseAssignment()
		} else {
			p.parseCallStatement(false)
		}
	default:
		p.parseUnknownLine()
	}
}

// parseVisibilityLed decides what a Public/Private/Friend/Static line
// opens by peeking the next two significant tokens: "Public Static
// Function" is still a function.
func (p *parser) parseVisibilityLed() {
	k1 := p.peekSig(1)
	k2 := p.peekSig(2)
	decide := k1
	if k1 == token.KwStatic {
		decide = k2
	}
	switch decide {
	case token.KwFunction:
		p.parseProcedure(KindFunctionStatement, token.KwFunction)
	case token.KwSub:
		p.parseProcedure(KindSubStatement, token.KwSub)
	case token.KwProperty:
		p.parseProcedure(KindPropertyStatement, token.KwProperty)
	default:
		if k1 == token.KwConst {
			p.parseLineStatement(KindConstStatement)
			return
		}
		p.parseLineStatement(KindDimStatement)
	}
}

// parseLineStatement wraps one whole line, leading keyword included,
// in a single node. Declarations and other line-shaped statements keep
// their inner tokens flat.
func (p *parser) parseLineStatement(kind NodeKind) {
	p.b.StartNode(kind)
	p.finishLine()
	p.b.FinishNode()
}

// parseUnknownLine consumes a line nothing else claimed and flags it.
func (p *parser) parseUnknownLine() {
	sp := p.toks[p.pos].Span
	p.report(diag.SynLineTypeUnknown, sp,
		fmt.Sprintf("cannot classify statement starting with %q", p.toks[p.pos].Bytes(p.file)))
	p.b.StartNode(KindUnknownStatement)
	p.finishLine()
	p.b.FinishNode()
}

// parseProcedure parses Sub/Function/Property headers, their body, and
// the matching "End <keyword>" line.
func (p *parser) parseProcedure(kind NodeKind, endKw token.Kind) {
	p.b.StartNode(kind)
	for p.at(token.KwPublic) || p.at(token.KwPrivate) || p.at(token.KwFriend) || p.at(token.KwStatic) {
		p.bump()
		p.bumpWS()
	}
	p.bump() // Sub / Function / Property
	p.bumpWS()
	if kind == KindPropertyStatement &&
		(p.at(token.KwGet) || p.at(token.KwLet) || p.at(token.KwSet)) {
		p.bump()
		p.bumpWS()
	}
	if p.at(token.Identifier) {
		p.bump()
	}
	p.bumpWS()
	if p.at(token.SymLParen) {
		p.parseParameterList()
	}
	p.finishLine() // trailing "As Type" and comments stay flat
	p.parseStatementList(func() bool { return p.atEndPair(endKw) })
	p.consumeEndPair(endKw)
	p.b.FinishNode()
}

// parseParameterList consumes a balanced parenthesized region as one
// flat list node.
func (p *parser) parseParameterList() {
	p.b.StartNode(KindParameterList)
	depth := 0
	for !p.atEnd() {
		switch p.cur() {
		case token.SymLParen:
			depth++
		case token.SymRParen:
			depth--
		case token.Newline:
			depth = 0 // a parameter list never spans lines
		}
		if p.at(token.Newline) {
			break
		}
		p.bump()
		if depth == 0 {
			break
		}
	}
	p.b.FinishNode()
}

func (p *parser) parseIf() {
	p.b.StartNode(KindIfStatement)
	p.bump() // If
	p.parseCondition()
	if p.at(token.KwThen) {
		p.bump()
	}
	p.bumpWS()
	if !p.atEnd() && !p.at(token.Newline) && !p.atComment() {
		// Single-line If: the body lives on the same line.
		p.finishLine()
		p.b.FinishNode()
		return
	}
	p.finishLine()
	p.parseStatementList(func() bool {
		return p.atEndPair(token.KwIf) || p.at(token.KwElseIf) || p.at(token.KwElse)
	})
	for {
		if p.at(token.KwElseIf) {
			p.parseElseIfClause()
			continue
		}
		if p.at(token.KwElse) {
			p.parseElseClause()
			continue
		}
		break
	}
	p.consumeEndPair(token.KwIf)
	p.b.FinishNode()
}

func (p *parser) parseElseIfClause() {
	p.b.StartNode(KindElseIfClause)
	p.bump() // ElseIf
	p.parseCondition()
	if p.at(token.KwThen) {
		p.bump()
	}
	p.finishLine()
	p.parseStatementList(func() bool {
		return p.atEndPair(token.KwIf) || p.at(token.KwElseIf) || p.at(token.KwElse)
	})
	p.b.FinishNode()
}

func (p *parser) parseElseClause() {
	p.b.StartNode(KindElseClause)
	p.bump() // Else
	p.finishLine()
	p.parseStatementList(func() bool { return p.atEndPair(token.KwIf) })
	p.b.FinishNode()
}

// parseCondition parses the controlling expression of If/ElseIf up to
// Then or the end of the line, tolerating trailing junk.
func (p *parser) parseCondition() {
	p.bumpWS()
	p.parseExpr()
	for !p.atEnd() && !p.at(token.KwThen) && !p.at(token.Newline) {
		p.bump()
	}
}

func (p *parser) parseFor() {
	p.b.StartNode(KindForStatement)
	p.bump() // For
	p.bumpWS()
	if p.at(token.KwEach) {
		p.bump()
		p.bumpWS()
	}
	if p.at(token.Identifier) {
		p.bump()
	}
	p.bumpWS()
	if p.at(token.SymEqual) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
		p.bumpWS()
	}
	if p.at(token.KwIn) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
		p.bumpWS()
	}
	if p.at(token.KwTo) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
		p.bumpWS()
	}
	if p.at(token.KwStep) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
	}
	p.finishLine()
	p.parseStatementList(func() bool { return p.at(token.KwNext) })
	if p.at(token.KwNext) {
		p.finishLine() // "Next [counter]"
	} else {
		p.reportMissingEnd("Next")
	}
	p.b.FinishNode()
}

func (p *parser) parseDo() {
	p.b.StartNode(KindDoStatement)
	p.bump() // Do
	p.bumpWS()
	if p.at(token.KwWhile) || p.at(token.KwUntil) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
	}
	p.finishLine()
	p.parseStatementList(func() bool { return p.at(token.KwLoop) })
	if p.at(token.KwLoop) {
		p.bump()
		p.bumpWS()
		if p.at(token.KwWhile) || p.at(token.KwUntil) {
			p.bump()
			p.bumpWS()
			p.parseExpr()
		}
		p.finishLine()
	} else {
		p.reportMissingEnd("Loop")
	}
	p.b.FinishNode()
}

func (p *parser) parseWhile() {
	p.b.StartNode(KindWhileStatement)
	p.bump() // While
	p.bumpWS()
	p.parseExpr()
	p.finishLine()
	p.parseStatementList(func() bool { return p.at(token.KwWend) })
	if p.at(token.KwWend) {
		p.finishLine()
	} else {
		p.reportMissingEnd("Wend")
	}
	p.b.FinishNode()
}

// parseAssignment handles "x = expr", "obj.Member = expr" and the
// archaic "Let x = expr".
func (p *parser) parseAssignment() {
	p.b.StartNode(KindAssignmentStatement)
	if p.at(token.KwLet) {
		p.bump()
		p.bumpWS()
	}
	p.parsePostfixPrimary()
	p.bumpWS()
	if p.at(token.SymEqual) {
		p.bump()
		p.bumpWS()
		p.parseExpr()
	}
	p.finishLine()
	p.b.FinishNode()
}

// parseCallStatement handles "Call Name(args)" and the bare VB call
// form "Name arg1, arg2".
func (p *parser) parseCallStatement(withCallKw bool) {
	p.b.StartNode(KindCallStatement)
	if withCallKw {
		p.bump() // Call
		p.bumpWS()
	}
	p.parsePostfixPrimary()
	p.bumpWS()
	if !p.atEnd() && !p.at(token.Newline) && !p.atComment() {
		p.b.StartNode(KindArgumentList)
		for {
			p.parseExpr()
			p.bumpWS()
			if p.at(token.SymComma) {
				p.bump()
				p.bumpWS()
				continue
			}
			break
		}
		p.b.FinishNode()
	}
	p.finishLine()
	p.b.FinishNode()
}

// lineHasTopLevelAssign reports whether the current line contains an
// "=" outside any parentheses, which distinguishes an assignment from
// a bare call.
func (p *parser) lineHasTopLevelAssign() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.Newline:
			return false
		case token.SymLParen:
			depth++
		case token.SymRParen:
			depth--
		case token.SymEqual:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func (p *parser) parseStatementList(stop func() bool) {
	p.b.StartNode(KindStatementList)
	for !p.atEnd() && !stop() {
		if p.atTrivia() {
			p.bump()
			continue
		}
		p.parseStatement()
	}
	p.b.FinishNode()
}

// consumeEndPair consumes "End <kw>" plus the rest of its line, or
// reports the block as unterminated.
func (p *parser) consumeEndPair(kw token.Kind) {
	if !p.atEndPair(kw) {
		p.reportMissingEnd("End " + keywordSpelling(kw))
		return
	}
	p.bump() // End
	p.bumpWS()
	p.bump() // Sub / Function / Property / If
	p.finishLine()
}

func (p *parser) reportMissingEnd(terminator string) {
	sp := source.Span{File: p.file.ID}
	if p.pos > 0 {
		end := p.toks[p.pos-1].Span.End
		sp = source.Span{File: p.file.ID, Start: end, End: end}
	}
	p.report(diag.SynUnterminatedConstruct, sp, fmt.Sprintf("block is missing its %q terminator", terminator))
}

func keywordSpelling(kw token.Kind) string {
	for _, e := range token.Keywords {
		if e.Kind == kw {
			return e.Spelling
		}
	}
	return kw.String()
}

// Cursor helpers.

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) cur() token.Kind {
	if p.atEnd() {
		return eofKind
	}
	return p.toks[p.pos].Kind
}

func (p *parser) at(k token.Kind) bool { return p.cur() == k }

func (p *parser) atTrivia() bool {
	k := p.cur()
	return k == token.Whitespace || k == token.Newline ||
		k == token.EndOfLineComment || k == token.RemComment
}

func (p *parser) atComment() bool {
	return p.at(token.EndOfLineComment) || p.at(token.RemComment)
}

// atEndPair reports whether the cursor sits on "End <kw>", whitespace
// between the two allowed.
func (p *parser) atEndPair(kw token.Kind) bool {
	return p.at(token.KwEnd) && p.peekSig(1) == kw
}

// peekSig returns the n-th significant token kind after the cursor,
// skipping whitespace only. n is 1-based.
func (p *parser) peekSig(n int) token.Kind {
	seen := 0
	for i := p.pos + 1; i < len(p.toks); i++ {
		if p.toks[i].Kind == token.Whitespace {
			continue
		}
		seen++
		if seen == n {
			return p.toks[i].Kind
		}
	}
	return eofKind
}

// bump pushes the current token into the open node and advances.
func (p *parser) bump() {
	if p.atEnd() {
		return
	}
	p.b.PushToken(p.toks[p.pos])
	p.pos++
}

func (p *parser) bumpWS() {
	for p.at(token.Whitespace) {
		p.bump()
	}
}

// finishLine consumes the rest of the current line, terminator
// included when present.
func (p *parser) finishLine() {
	for !p.atEnd() && !p.at(token.Newline) {
		p.bump()
	}
	if p.at(token.Newline) {
		p.bump()
	}
}

func (p *parser) report(code diag.Code, sp source.Span, msg string) {
	if p.rep != nil {
		p.rep.Report(code, diag.SevError, sp, msg)
	}
}
