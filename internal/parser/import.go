package parser

import (
	"strings"

	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// parseImport parses `import a.b [as c] (, ...)*`.
func (p *Parser) parseImport() (*ast.Stmt, bool) {
	start := p.advance().Span.Start
	names := &ast.Expr{Kind: ast.ExprTuple}
	for {
		alias, ok := p.parseAlias()
		if !ok {
			return nil, false
		}
		names.Elts = append(names.Elts, alias)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	names.Span = p.spanFrom(names.Elts[0].Span.Start)
	return &ast.Stmt{Kind: ast.StmtImport, Names: names, Span: p.spanFrom(start)}, true
}

// parseFromImport parses `from .a.b import x [as y], ...` with optional
// parentheses around the names.
func (p *Parser) parseFromImport() (*ast.Stmt, bool) {
	start := p.advance().Span.Start
	var mod strings.Builder
	for p.at(token.Dot) {
		p.advance()
		mod.WriteByte('.')
	}
	if p.at(token.Ident) {
		name, ok := p.parseDotted()
		if !ok {
			return nil, false
		}
		mod.WriteString(name)
	}
	if mod.Len() == 0 {
		p.errorHere(diag.SynExpectIdentifier, "expected module name")
		return nil, false
	}
	if _, ok := p.expect(token.KwImport, diag.SynExpectImport, "expected 'import'"); !ok {
		return nil, false
	}

	names := &ast.Expr{Kind: ast.ExprTuple}
	namesStart := p.peek().Span.Start
	switch {
	case p.at(token.LParen):
		p.advance()
		l, ok := p.parseList(token.RParen, p.parseAlias)
		if !ok {
			return nil, false
		}
		if len(l.elts) == 0 {
			p.errorAt(diag.SynExpectIdentifier, p.last.Span, "expected names to import")
			return nil, false
		}
		names.Elts, names.Dangling, names.Parens = l.elts, l.dangling, true
	case p.at(token.Star):
		star := p.advance()
		names.Elts = []*ast.Expr{{Kind: ast.ExprAlias, Name: "*", Span: star.Span}}
	default:
		for {
			alias, ok := p.parseAlias()
			if !ok {
				return nil, false
			}
			names.Elts = append(names.Elts, alias)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	names.Span = p.spanFrom(namesStart)
	return &ast.Stmt{
		Kind:   ast.StmtFromImport,
		Module: mod.String(),
		Names:  names,
		Span:   p.spanFrom(start),
	}, true
}

func (p *Parser) parseAlias() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	name, ok := p.parseDotted()
	if !ok {
		return nil, false
	}
	alias := &ast.Expr{Kind: ast.ExprAlias, Name: name}
	if p.at(token.KwAs) {
		p.advance()
		as, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name after 'as'")
		if !ok {
			return nil, false
		}
		alias.AsName = as.Text
	}
	alias.Span = p.spanFrom(start)
	return alias, true
}

func (p *Parser) parseDotted() (string, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected module name")
	if !ok {
		return "", false
	}
	name := first.Text
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name after '.'")
		if !ok {
			return "", false
		}
		name += "." + part.Text
	}
	return name, true
}
