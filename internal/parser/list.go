package parser

import (
	"fmt"

	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

type list struct {
	elts          []*ast.Expr
	dangling      []ast.Trivia
	trailingComma bool
}

var closeCodes = map[token.Kind]diag.Code{
	token.RParen:   diag.SynExpectRightParen,
	token.RBracket: diag.SynExpectRightBrack,
	token.RBrace:   diag.SynExpectRightBrace,
}

// parseList parses comma separated elements up to and including the closing
// bracket; the opening bracket is already consumed.
//
// Comments are attached as follows: comments before an element lead it,
// comments on the line of an element (or its comma) trail it, and comments
// before the closing bracket dangle on the bracket node.
func (p *Parser) parseList(closeKind token.Kind, elem func() (*ast.Expr, bool)) (list, bool) {
	var (
		l    list
		prev *ast.Expr
	)
	for p.err == nil {
		lead := p.takeLead()
		if prev != nil {
			var same []token.Token
			same, lead = splitSameLine(lead)
			prev.Trailing = append(prev.Trailing, p.trivia(same)...)
		}
		if p.at(closeKind) {
			l.dangling = p.trivia(lead)
			p.advance()
			return l, true
		}
		if prev != nil && !l.trailingComma {
			p.pushLead(lead)
			p.errorHere(closeCodes[closeKind], fmt.Sprintf("expected ',' or '%s'", closeKind))
			return l, false
		}

		el, ok := elem()
		if !ok {
			return l, false
		}
		el.Leading = append(append(p.trivia(lead), p.takeStray()...), el.Leading...)
		l.elts = append(l.elts, el)
		prev = el

		l.trailingComma = false
		if p.at(token.Comma) {
			el.Trailing = append(el.Trailing, p.trivia(p.takeLead())...)
			p.advance()
			l.trailingComma = true
		}
	}
	return l, false
}
