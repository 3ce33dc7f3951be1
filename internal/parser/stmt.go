package parser

import (
	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// parseStatement parses one logical line or one compound statement.
// A line with `;` separators yields several statements.
func (p *Parser) parseStatement() ([]*ast.Stmt, bool) {
	lead := p.trivia(p.takeLead())
	lead = append(p.takeStray(), lead...)

	var (
		stmts []*ast.Stmt
		ok    bool
	)
	switch tok := p.peek(); {
	case tok.Kind == token.At, tok.Kind == token.KwDef:
		var s *ast.Stmt
		s, ok = p.parseFuncDef()
		stmts = []*ast.Stmt{s}
	case tok.Kind == token.KwIf:
		var s *ast.Stmt
		s, ok = p.parseIf()
		stmts = []*ast.Stmt{s}
	case tok.Kind == token.KwFor:
		var s *ast.Stmt
		s, ok = p.parseFor()
		stmts = []*ast.Stmt{s}
	case p.atTypeDef():
		var s *ast.Stmt
		s, ok = p.parseTypeDef()
		stmts = []*ast.Stmt{s}
	case tok.Kind == token.Indent:
		p.unexpected()
		return nil, false
	default:
		stmts, ok = p.parseSimpleLine()
	}
	if !ok || p.err != nil {
		return nil, false
	}
	stmts[0].Leading = append(lead, stmts[0].Leading...)
	return stmts, true
}

// parseSimpleLine parses `small (';' small)* [';'] NEWLINE`.
func (p *Parser) parseSimpleLine() ([]*ast.Stmt, bool) {
	var stmts []*ast.Stmt
	for {
		s, ok := p.parseSmallStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, s)
		if !p.at(token.Semicolon) {
			break
		}
		p.advance()
		if p.at(token.Newline) || p.at(token.EOF) {
			break
		}
	}
	if stray := p.takeStray(); len(stray) > 0 {
		stmts[0].Leading = append(stmts[0].Leading, stray...)
	}
	trailing, ok := p.endOfLine()
	if !ok {
		return nil, false
	}
	last := stmts[len(stmts)-1]
	last.Trailing = append(last.Trailing, trailing...)
	return stmts, true
}

// endOfLine consumes NEWLINE and returns the comment that preceded it.
func (p *Parser) endOfLine() ([]ast.Trivia, bool) {
	if !p.at(token.Newline) {
		p.unexpected()
		return nil, false
	}
	trailing := p.trivia(p.takeLead())
	p.advance()
	return trailing, true
}

func (p *Parser) parseSmallStmt() (*ast.Stmt, bool) {
	tok := p.peek()
	start := tok.Span.Start
	switch tok.Kind {
	case token.KwPass, token.KwBreak, token.KwContinue:
		p.advance()
		kind := map[token.Kind]ast.StmtKind{
			token.KwPass:     ast.StmtPass,
			token.KwBreak:    ast.StmtBreak,
			token.KwContinue: ast.StmtContinue,
		}[tok.Kind]
		return &ast.Stmt{Kind: kind, Span: tok.Span}, true

	case token.KwReturn, token.KwRaise:
		p.advance()
		kind := ast.StmtReturn
		if tok.Kind == token.KwRaise {
			kind = ast.StmtRaise
		}
		s := &ast.Stmt{Kind: kind}
		if !p.atLineEnd() {
			var ok bool
			if kind == ast.StmtReturn {
				s.Value, ok = p.parseExprList()
			} else {
				s.Value, ok = p.parseExpr()
			}
			if !ok {
				return nil, false
			}
		}
		s.Span = p.spanFrom(start)
		return s, true

	case token.KwAssert:
		p.advance()
		test, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		s := &ast.Stmt{Kind: ast.StmtAssert, Value: test}
		if p.at(token.Comma) {
			p.advance()
			if s.Msg, ok = p.parseExpr(); !ok {
				return nil, false
			}
		}
		s.Span = p.spanFrom(start)
		return s, true

	case token.KwImport:
		return p.parseImport()

	case token.KwFrom:
		return p.parseFromImport()
	}

	if p.atSoft(token.SoftLog) && p.peekN(1).tok.Kind == token.Ident {
		p.advance()
		ev, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Stmt{Kind: ast.StmtLog, Value: ev, Span: p.spanFrom(start)}, true
	}
	return p.parseExprStmt()
}

func (p *Parser) atLineEnd() bool {
	switch p.peek().Kind {
	case token.Newline, token.Semicolon, token.EOF:
		return true
	}
	return false
}

// parseExprStmt parses declarations, assignments and bare expressions.
func (p *Parser) parseExprStmt() (*ast.Stmt, bool) {
	start := p.peek().Span.Start
	first, ok := p.parseExprList()
	if !ok {
		return nil, false
	}

	switch tok := p.peek(); {
	case tok.Kind == token.Colon:
		if !isDeclTarget(first) {
			p.errorAt(diag.SynBadAssignTarget, first.Span, "illegal target for annotation")
			return nil, false
		}
		p.advance()
		s := &ast.Stmt{Kind: ast.StmtDecl, Target: first}
		if s.Annotation, ok = p.parseExpr(); !ok {
			return nil, false
		}
		if p.at(token.Assign) {
			p.advance()
			if s.Value, ok = p.parseExprList(); !ok {
				return nil, false
			}
		}
		s.Span = p.spanFrom(start)
		return s, true

	case tok.Kind == token.Assign:
		s := &ast.Stmt{Kind: ast.StmtAssign}
		cur := first
		for p.at(token.Assign) {
			if !isAssignTarget(cur) {
				p.errorAt(diag.SynBadAssignTarget, cur.Span, "cannot assign to expression")
				return nil, false
			}
			p.advance()
			s.Targets = append(s.Targets, cur)
			if cur, ok = p.parseExprList(); !ok {
				return nil, false
			}
		}
		s.Value = cur
		s.Span = p.spanFrom(start)
		return s, true

	case tok.Kind.IsAugAssign():
		if !isDeclTarget(first) {
			p.errorAt(diag.SynBadAssignTarget, first.Span, "illegal expression for augmented assignment")
			return nil, false
		}
		p.advance()
		s := &ast.Stmt{Kind: ast.StmtAugAssign, Target: first, Op: tok.Kind.String()}
		if s.Value, ok = p.parseExprList(); !ok {
			return nil, false
		}
		s.Span = p.spanFrom(start)
		return s, true
	}
	return &ast.Stmt{Kind: ast.StmtExpr, Value: first, Span: p.spanFrom(start)}, true
}

func isDeclTarget(e *ast.Expr) bool {
	switch e.Unparen().Kind {
	case ast.ExprName, ast.ExprAttribute, ast.ExprSubscript:
		return true
	}
	return false
}

func isAssignTarget(e *ast.Expr) bool {
	e = e.Unparen()
	switch e.Kind {
	case ast.ExprName, ast.ExprAttribute, ast.ExprSubscript:
		return true
	case ast.ExprTuple, ast.ExprList:
		for _, el := range e.Elts {
			if !isAssignTarget(el) {
				return false
			}
		}
		return true
	}
	return false
}

// parseSuite parses the body after a header colon, either inline or as an
// indented block. It returns the comment found on the header line.
func (p *Parser) parseSuite() (*ast.Block, []ast.Trivia, bool) {
	if !p.at(token.Newline) {
		stmts, ok := p.parseSimpleLine()
		if !ok {
			return nil, nil, false
		}
		return &ast.Block{Stmts: stmts, Inline: true}, nil, true
	}

	header, _ := p.endOfLine()
	if !p.at(token.Indent) {
		p.errorHere(diag.SynExpectIndent, "expected an indented block")
		return nil, nil, false
	}
	indentLead := p.takeLead()
	p.advance()
	p.pushLead(indentLead)

	col := p.column(p.peek().Span.Start)
	block := &ast.Block{}
	for p.err == nil && !p.at(token.Dedent) && !p.at(token.EOF) {
		stmts, ok := p.parseStatement()
		if !ok {
			return nil, nil, false
		}
		block.Stmts = append(block.Stmts, stmts...)
	}
	if p.err != nil {
		return nil, nil, false
	}
	if !p.at(token.Dedent) {
		p.unexpected()
		return nil, nil, false
	}
	inner, outer := p.splitBlockEnd(p.takeLead(), col)
	p.advance()
	block.Trailing = p.trivia(inner)
	p.pushLead(outer)
	return block, header, true
}

func (p *Parser) parseIf() (*ast.Stmt, bool) {
	start := p.advance().Span.Start
	test, ok := p.parseNamedExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'"); !ok {
		return nil, false
	}
	body, header, ok := p.parseSuite()
	if !ok {
		return nil, false
	}
	s := &ast.Stmt{Kind: ast.StmtIf, Value: test, Body: body, Trailing: header}

	if p.at(token.KwElif) || p.at(token.KwElse) {
		lead := p.trivia(p.takeLead())
		elseStart := p.peek().Span.Start
		clause := &ast.ElseClause{Leading: lead}
		if p.at(token.KwElif) {
			if clause.Elif, ok = p.parseIf(); !ok {
				return nil, false
			}
		} else {
			p.advance()
			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'"); !ok {
				return nil, false
			}
			if clause.Body, clause.Trailing, ok = p.parseSuite(); !ok {
				return nil, false
			}
		}
		clause.Span = p.spanFrom(elseStart)
		s.Else = clause
	}
	s.Span = p.spanFrom(start)
	return s, true
}

func (p *Parser) parseFor() (*ast.Stmt, bool) {
	start := p.advance().Span.Start
	target, ok := p.parseForTarget()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynExpectIn, "expected 'in'"); !ok {
		return nil, false
	}
	iter, ok := p.parseExprList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'"); !ok {
		return nil, false
	}
	body, header, ok := p.parseSuite()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{
		Kind:     ast.StmtFor,
		Target:   target,
		Value:    iter,
		Body:     body,
		Trailing: header,
		Span:     p.spanFrom(start),
	}, true
}

// parseForTarget parses `name`, `a, b` or the annotated `name: T`.
func (p *Parser) parseForTarget() (*ast.Expr, bool) {
	start := p.peek().Span.Start
	if p.at(token.Ident) && p.peekN(1).tok.Kind == token.Colon {
		name := p.advance()
		p.advance()
		ann, ok := p.parseBinary(1)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprParam, Name: name.Text, X: ann, Span: p.spanFrom(start)}, true
	}
	first, ok := p.parseBinary(1)
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	tuple := &ast.Expr{Kind: ast.ExprTuple, Elts: []*ast.Expr{first}}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.KwIn) {
			break
		}
		el, ok := p.parseBinary(1)
		if !ok {
			return nil, false
		}
		tuple.Elts = append(tuple.Elts, el)
	}
	tuple.Span = p.spanFrom(start)
	return tuple, true
}
