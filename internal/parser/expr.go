package parser

import (
	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

func (p *Parser) canStartExpr() bool {
	switch p.peek().Kind {
	case token.Ident, token.Int, token.Decimal, token.String, token.KwTrue, token.KwFalse,
		token.LParen, token.LBracket, token.LBrace,
		token.Minus, token.Plus, token.Tilde, token.KwNot:
		return true
	}
	return false
}

// parseExprList parses `expr (',' expr)* [',']`; more than one element (or a
// trailing comma) yields an unparenthesized tuple.
func (p *Parser) parseExprList() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	tuple := &ast.Expr{Kind: ast.ExprTuple, Elts: []*ast.Expr{first}}
	for p.at(token.Comma) {
		p.advance()
		if !p.canStartExpr() {
			break
		}
		el, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		tuple.Elts = append(tuple.Elts, el)
	}
	tuple.Span = p.spanFrom(start)
	return tuple, true
}

// parseNamedExpr parses `name := expr` or a plain expression.
func (p *Parser) parseNamedExpr() (*ast.Expr, bool) {
	if p.at(token.Ident) && p.peekN(1).tok.Kind == token.Walrus {
		name := p.advance()
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		target := &ast.Expr{Kind: ast.ExprName, Name: name.Text, Span: name.Span}
		return &ast.Expr{Kind: ast.ExprNamed, X: target, Y: value, Span: p.spanFrom(name.Span.Start)}, true
	}
	return p.parseExpr()
}

// parseExpr parses a full expression: `body if test else orelse`.
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	body, ok := p.parseOr()
	if !ok || !p.at(token.KwIf) {
		return body, ok
	}
	p.advance()
	test, ok := p.parseOr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwElse, diag.SynUnexpectedToken, "expected 'else' in conditional expression"); !ok {
		return nil, false
	}
	orelse, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprTernary, X: body, Y: test, Z: orelse, Span: p.spanFrom(start)}, true
}

func (p *Parser) parseOr() (*ast.Expr, bool) {
	return p.parseBoolOp(token.KwOr, p.parseAnd)
}

func (p *Parser) parseAnd() (*ast.Expr, bool) {
	return p.parseBoolOp(token.KwAnd, p.parseNot)
}

func (p *Parser) parseBoolOp(op token.Kind, operand func() (*ast.Expr, bool)) (*ast.Expr, bool) {
	start := p.peek().Span.Start
	first, ok := operand()
	if !ok || !p.at(op) {
		return first, ok
	}
	e := &ast.Expr{Kind: ast.ExprBoolOp, Op: op.String(), Elts: []*ast.Expr{first}}
	for p.at(op) {
		p.advance()
		next, ok := operand()
		if !ok {
			return nil, false
		}
		e.Elts = append(e.Elts, next)
	}
	e.Span = p.spanFrom(start)
	return e, true
}

func (p *Parser) parseNot() (*ast.Expr, bool) {
	if !p.at(token.KwNot) {
		return p.parseComparison()
	}
	start := p.advance().Span.Start
	x, ok := p.parseNot()
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprUnary, Op: "not", X: x, Span: p.spanFrom(start)}, true
}

// compareOp returns the comparison operator at the cursor, if any.
func (p *Parser) compareOp() (string, int) {
	switch p.peek().Kind {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return p.peek().Kind.String(), 1
	case token.KwIn:
		return "in", 1
	case token.KwNot:
		if p.peekN(1).tok.Kind == token.KwIn {
			return "not in", 2
		}
	}
	return "", 0
}

func (p *Parser) parseComparison() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	first, ok := p.parseBinary(ast.PrecBitOr)
	if !ok {
		return nil, false
	}
	op, n := p.compareOp()
	if n == 0 {
		return first, true
	}
	e := &ast.Expr{Kind: ast.ExprCompare, Elts: []*ast.Expr{first}}
	for n > 0 {
		for range n {
			p.advance()
		}
		next, ok := p.parseBinary(ast.PrecBitOr)
		if !ok {
			return nil, false
		}
		e.Ops = append(e.Ops, op)
		e.Elts = append(e.Elts, next)
		op, n = p.compareOp()
	}
	e.Span = p.spanFrom(start)
	return e, true
}

// parseBinary parses left-associative binary operators binding at least as
// tight as minPrec.
func (p *Parser) parseBinary(minPrec int) (*ast.Expr, bool) {
	start := p.peek().Span.Start
	left, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for {
		op := p.peek().Kind.String()
		prec := ast.BinaryPrec(op)
		if prec == 0 || prec == ast.PrecPower || prec < minPrec || !p.peek().IsPunctOrOp() {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Expr{Kind: ast.ExprBinary, Op: op, X: left, Y: right, Span: p.spanFrom(start)}
	}
}

func (p *Parser) parseFactor() (*ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Minus, token.Plus, token.Tilde:
		tok := p.advance()
		x, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprUnary, Op: tok.Text, X: x, Span: p.spanFrom(tok.Span.Start)}, true
	}
	return p.parsePower()
}

// parsePower parses `primary ['**' factor]`; '**' is right associative and
// binds tighter than a unary operator on its left.
func (p *Parser) parsePower() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	base, ok := p.parsePrefixed()
	if !ok || !p.at(token.StarStar) {
		return base, ok
	}
	p.advance()
	exp, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprBinary, Op: "**", X: base, Y: exp, Span: p.spanFrom(start)}, true
}

// parsePrefixed handles the external call markers `extcall` and `staticcall`.
func (p *Parser) parsePrefixed() (*ast.Expr, bool) {
	if (p.atSoft(token.SoftExtcall) || p.atSoft(token.SoftStaticcall)) && p.peekN(1).tok.Kind == token.Ident {
		kw := p.advance()
		x, ok := p.parsePrimary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprUnary, Op: kw.Text, X: x, Span: p.spanFrom(kw.Span.Start)}, true
	}
	return p.parsePrimary()
}

// parsePrimary parses an atom followed by attribute, call and subscript
// trailers.
func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	x, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for p.err == nil {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name")
			if !ok {
				return nil, false
			}
			x = &ast.Expr{Kind: ast.ExprAttribute, X: x, Name: name.Text, Span: p.spanFrom(start)}
		case token.LParen:
			p.advance()
			l, ok := p.parseList(token.RParen, p.parseArg)
			if !ok {
				return nil, false
			}
			x = &ast.Expr{Kind: ast.ExprCall, X: x, Elts: l.elts, Dangling: l.dangling, Span: p.spanFrom(start)}
		case token.LBracket:
			open := p.advance()
			l, ok := p.parseList(token.RBracket, p.parseNamedExpr)
			if !ok {
				return nil, false
			}
			if len(l.elts) == 0 {
				p.errorAt(diag.SynExpectExpression, open.Span, "expected subscript index")
				return nil, false
			}
			index := l.elts[0]
			if len(l.elts) > 1 || l.trailingComma {
				index = &ast.Expr{Kind: ast.ExprTuple, Elts: l.elts, Span: p.spanFrom(l.elts[0].Span.Start)}
			}
			x = &ast.Expr{Kind: ast.ExprSubscript, X: x, Y: index, Dangling: l.dangling, Span: p.spanFrom(start)}
		default:
			return x, true
		}
	}
	return nil, false
}

// parseArg parses a call argument: `name=value` or an expression.
func (p *Parser) parseArg() (*ast.Expr, bool) {
	if p.at(token.Ident) && p.peekN(1).tok.Kind == token.Assign {
		name := p.advance()
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprKeyword, Name: name.Text, X: value, Span: p.spanFrom(name.Span.Start)}, true
	}
	return p.parseNamedExpr()
}

func (p *Parser) parsePair() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	key, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in dict entry"); !ok {
		return nil, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprPair, X: key, Y: value, Span: p.spanFrom(start)}, true
}

func (p *Parser) parseAtom() (*ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.Expr{Kind: ast.ExprName, Name: tok.Text, Span: tok.Span}, true
	case token.Int:
		p.advance()
		return &ast.Expr{Kind: ast.ExprInt, Value: tok.Text, Span: tok.Span}, true
	case token.Decimal:
		p.advance()
		return &ast.Expr{Kind: ast.ExprDecimal, Value: tok.Text, Span: tok.Span}, true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.Expr{Kind: ast.ExprBool, Value: tok.Text, Span: tok.Span}, true
	case token.Ellipsis:
		p.advance()
		return &ast.Expr{Kind: ast.ExprEllipsis, Span: tok.Span}, true
	case token.String:
		return p.parseStrings()
	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		p.advance()
		l, ok := p.parseList(token.RBracket, p.parseNamedExpr)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprList, Elts: l.elts, Dangling: l.dangling, Span: p.spanFrom(tok.Span.Start)}, true
	case token.LBrace:
		p.advance()
		l, ok := p.parseList(token.RBrace, p.parsePair)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprDict, Elts: l.elts, Dangling: l.dangling, Span: p.spanFrom(tok.Span.Start)}, true
	}
	if tok.Kind == token.EOF || tok.Kind == token.Newline {
		p.unexpected()
	} else {
		p.errorHere(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
	}
	return nil, false
}

// parseStrings joins adjacent string literals into one concatenation node.
func (p *Parser) parseStrings() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	var parts []*ast.Expr
	for p.at(token.String) {
		tok := p.advance()
		parts = append(parts, &ast.Expr{Kind: ast.ExprString, Value: tok.Text, Span: tok.Span})
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	return &ast.Expr{Kind: ast.ExprStrConcat, Elts: parts, Span: p.spanFrom(start)}, true
}

func (p *Parser) parseParenOrTuple() (*ast.Expr, bool) {
	open := p.advance()
	l, ok := p.parseList(token.RParen, p.parseNamedExpr)
	if !ok {
		return nil, false
	}
	span := p.spanFrom(open.Span.Start)
	if len(l.elts) == 1 && !l.trailingComma {
		return &ast.Expr{Kind: ast.ExprParen, X: l.elts[0], Dangling: l.dangling, Span: span}, true
	}
	return &ast.Expr{Kind: ast.ExprTuple, Elts: l.elts, Dangling: l.dangling, Parens: true, Span: span}, true
}
