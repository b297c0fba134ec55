package cst

import "vb6cst/internal/token"

// Expression parsing. The trees are flat-precedence: binary operators
// chain left to right, which is enough structure for tooling that
// walks a concrete tree. Operands that make no sense are consumed as
// raw tokens rather than rejected, so expression parsing can never
// lose input.

// parseExpr parses one expression, wrapping operator chains into
// BinaryExpression nodes retroactively via checkpoints.
func (p *parser) parseExpr() {
	cp := p.b.Checkpoint()
	p.parsePrimary()
	for {
		i := p.pos
		for i < len(p.toks) && p.toks[i].Kind == token.Whitespace {
			i++
		}
		if i >= len(p.toks) || !isBinaryOp(p.toks[i].Kind) {
			return
		}
		p.b.StartNodeAt(cp, KindBinaryExpression)
		p.bumpWS()
		p.bump() // operator
		p.bumpWS()
		p.parsePrimary()
		p.b.FinishNode()
	}
}

func (p *parser) parsePrimary() {
	switch p.cur() {
	case token.Number, token.StringLiteral, token.DateTimeLiteral,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwEmpty, token.KwMe:
		p.b.StartNode(KindLiteralExpression)
		p.bump()
		p.b.FinishNode()
	case token.KwNot, token.SymMinus, token.SymPlus:
		p.b.StartNode(KindUnaryExpression)
		p.bump()
		p.bumpWS()
		p.parsePrimary()
		p.b.FinishNode()
	case token.Identifier, token.KwNew:
		p.parsePostfixPrimary()
	case token.SymLParen:
		p.b.StartNode(KindParenthesizedExpression)
		p.bump()
		p.bumpWS()
		p.parseExpr()
		p.bumpWS()
		if p.at(token.SymRParen) {
			p.bump()
		}
		p.b.FinishNode()
	default:
		// Tolerance: swallow one raw token so the caller makes
		// progress, unless the token closes the current context.
		if !p.atEnd() && !p.atExprStop() {
			p.bump()
		}
	}
}

// parsePostfixPrimary parses an identifier followed by any chain of
// member accesses and call parentheses: a.b.c(1).d becomes nested
// MemberAccess/Call expressions around the identifier.
func (p *parser) parsePostfixPrimary() {
	cp := p.b.Checkpoint()
	if p.at(token.KwNew) {
		p.b.StartNode(KindUnaryExpression)
		p.bump()
		p.bumpWS()
		p.parsePostfixPrimary()
		p.b.FinishNode()
		return
	}
	if !p.at(token.Identifier) {
		p.parsePrimary()
		return
	}
	p.b.StartNode(KindIdentifierExpression)
	p.bump()
	p.b.FinishNode()
	for {
		switch p.cur() {
		case token.SymDot:
			p.b.StartNodeAt(cp, KindMemberAccessExpression)
			p.bump() // .
			if p.at(token.Identifier) || p.cur().IsKeyword() {
				p.bump()
			}
			p.b.FinishNode()
		case token.SymLParen:
			p.b.StartNodeAt(cp, KindCallExpression)
			p.parseParenArgs()
			p.b.FinishNode()
		default:
			return
		}
	}
}

// parseParenArgs parses "(expr, expr, ...)" into one ArgumentList,
// parentheses included.
func (p *parser) parseParenArgs() {
	p.b.StartNode(KindArgumentList)
	p.bump() // (
	p.bumpWS()
	for !p.atEnd() && !p.at(token.SymRParen) && !p.at(token.Newline) {
		p.parseExpr()
		p.bumpWS()
		if p.at(token.SymComma) {
			p.bump()
			p.bumpWS()
			continue
		}
		break
	}
	if p.at(token.SymRParen) {
		p.bump()
	}
	p.b.FinishNode()
}

// atExprStop reports whether the current token ends the surrounding
// expression context rather than belonging to the expression.
func (p *parser) atExprStop() bool {
	switch p.cur() {
	case token.Newline, token.EndOfLineComment, token.RemComment,
		token.KwThen, token.KwTo, token.KwStep, token.KwIn,
		token.SymComma, token.SymRParen:
		return true
	}
	return false
}

func isBinaryOp(k token.Kind) bool {
	switch k {
	case token.SymPlus, token.SymMinus, token.SymStar, token.SymSlash,
		token.SymBackslash, token.SymCaret, token.SymAmpersand,
		token.SymEqual, token.SymLess, token.SymGreater,
		token.SymLessOrEqual, token.SymGreaterOrEqual, token.SymInequality,
		token.KwAnd, token.KwOr, token.KwXor, token.KwMod,
		token.KwIs, token.KwImp, token.KwEqv:
		return true
	}
	return false
}
