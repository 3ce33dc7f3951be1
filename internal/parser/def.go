package parser

import (
	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

var typeDefKinds = map[string]ast.StmtKind{
	token.SoftStruct:    ast.StmtStruct,
	token.SoftInterface: ast.StmtInterface,
	token.SoftEvent:     ast.StmtEvent,
	token.SoftEnum:      ast.StmtEnum,
	token.SoftFlag:      ast.StmtFlag,
}

// atTypeDef reports whether the next tokens read `struct Name:` (or one of
// the other definition words).
func (p *Parser) atTypeDef() bool {
	tok := p.peek()
	if tok.Kind != token.Ident {
		return false
	}
	if _, ok := typeDefKinds[tok.Text]; !ok {
		return false
	}
	return p.peekN(1).tok.Kind == token.Ident && p.peekN(2).tok.Kind == token.Colon
}

func (p *Parser) parseTypeDef() (*ast.Stmt, bool) {
	kw := p.advance()
	name := p.advance()
	p.advance() // ':'
	body, header, ok := p.parseSuite()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{
		Kind:     typeDefKinds[kw.Text],
		Name:     name.Text,
		Body:     body,
		Trailing: header,
		Span:     p.spanFrom(kw.Span.Start),
	}, true
}

// parseFuncDef parses decorators and a def. Interface members may carry
// their mutability instead of a body: `def f() -> uint256: view`.
func (p *Parser) parseFuncDef() (*ast.Stmt, bool) {
	start := p.peek().Span.Start
	s := &ast.Stmt{Kind: ast.StmtFunc}

	for p.at(token.At) {
		var lead []ast.Trivia
		if len(s.Decorators) > 0 {
			lead = p.trivia(p.takeLead())
		}
		p.advance()
		dec, ok := p.parseNamedExpr()
		if !ok {
			return nil, false
		}
		dec.Leading = append(append(lead, p.takeStray()...), dec.Leading...)
		trailing, ok := p.endOfLine()
		if !ok {
			return nil, false
		}
		dec.Trailing = append(dec.Trailing, trailing...)
		s.Decorators = append(s.Decorators, dec)
	}
	if len(s.Decorators) > 0 {
		s.HeaderLeading = p.trivia(p.takeLead())
	}

	if _, ok := p.expect(token.KwDef, diag.SynExpectDef, "expected 'def' after decorator"); !ok {
		return nil, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return nil, false
	}
	s.Name = name.Text

	if s.Params, ok = p.parseParams(); !ok {
		return nil, false
	}
	if p.at(token.Arrow) {
		p.advance()
		if s.Returns, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'"); !ok {
		return nil, false
	}

	if p.at(token.Ident) && p.peekN(1).tok.Kind == token.Newline {
		s.Mutability = p.advance().Text
		if s.Trailing, ok = p.endOfLine(); !ok {
			return nil, false
		}
		s.Span = p.spanFrom(start)
		return s, true
	}

	if s.Body, s.Trailing, ok = p.parseSuite(); !ok {
		return nil, false
	}
	s.Span = p.spanFrom(start)
	return s, true
}

func (p *Parser) parseParams() (*ast.Expr, bool) {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return nil, false
	}
	params := &ast.Expr{Kind: ast.ExprParams}
	l, ok := p.parseList(token.RParen, p.parseParam)
	if !ok {
		return nil, false
	}
	params.Elts, params.Dangling = l.elts, l.dangling
	params.Span = p.spanFrom(open.Span.Start)
	return params, true
}

func (p *Parser) parseParam() (*ast.Expr, bool) {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
	if !ok {
		return nil, false
	}
	param := &ast.Expr{Kind: ast.ExprParam, Name: name.Text}
	if p.at(token.Colon) {
		p.advance()
		if param.X, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	if p.at(token.Assign) {
		p.advance()
		if param.Y, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	param.Span = p.spanFrom(name.Span.Start)
	return param, true
}
