package format

import (
	"strings"

	"mamushi/internal/ast"
)

func (p *printer) stmt(depth int, s *ast.Stmt, first bool) {
	p.leading(depth, s.Leading, first)
	c := context{depth: depth}

	switch s.Kind {
	case ast.StmtPass, ast.StmtBreak, ast.StmtContinue:
		p.w.Line(depth, s.Kind.Keyword())
	case ast.StmtImport:
		p.w.Line(depth, "import "+aliases(s.Names))
	case ast.StmtFromImport:
		p.fromImport(c, s)
	case ast.StmtDecl:
		parts := []part{{"", s.Target}, {": ", s.Annotation}}
		if s.Value != nil {
			parts = append(parts, part{" = ", s.Value})
		}
		p.seq(c, "", parts, "")
	case ast.StmtAssign:
		parts := make([]part, 0, len(s.Targets)+1)
		for _, t := range s.Targets {
			prefix := " = "
			if len(parts) == 0 {
				prefix = ""
			}
			parts = append(parts, part{prefix, t})
		}
		p.seq(c, "", append(parts, part{" = ", s.Value}), "")
	case ast.StmtAugAssign:
		p.seq(c, "", []part{{"", s.Target}, {" " + s.Op + " ", s.Value}}, "")
	case ast.StmtExpr:
		p.emit(c, "", s.Value, "")
	case ast.StmtReturn, ast.StmtRaise:
		if s.Value == nil {
			p.w.Line(depth, s.Kind.Keyword())
		} else {
			p.emit(c, s.Kind.Keyword()+" ", s.Value, "")
		}
	case ast.StmtAssert:
		parts := []part{{"assert ", s.Value}}
		if s.Msg != nil {
			parts = append(parts, part{", ", s.Msg})
		}
		p.seq(c, "", parts, "")
	case ast.StmtLog:
		p.emit(c, "log ", s.Value, "")
	case ast.StmtIf:
		p.ifStmt(depth, s, "if ")
		return
	case ast.StmtFor:
		p.seq(c, "", []part{{"for ", s.Target}, {" in ", s.Value}}, ":")
	case ast.StmtFunc:
		p.funcHeader(c, s)
	case ast.StmtStruct, ast.StmtInterface, ast.StmtEvent, ast.StmtEnum, ast.StmtFlag:
		p.w.Line(depth, s.Kind.Keyword()+" "+s.Name+":")
	}
	p.w.Comments(s.Trailing)
	p.block(depth+1, s.Body)
}

// ifStmt writes an if statement and its elif/else chain. Blank lines
// before `elif` and `else` are dropped.
func (p *printer) ifStmt(depth int, s *ast.Stmt, keyword string) {
	p.emit(context{depth: depth}, keyword, s.Value, ":")
	p.w.Comments(s.Trailing)
	p.block(depth+1, s.Body)

	el := s.Else
	if el == nil {
		return
	}
	p.comments(depth, el.Leading)
	if el.Elif != nil {
		p.ifStmt(depth, el.Elif, "elif ")
		return
	}
	p.w.Line(depth, "else:")
	p.w.Comments(el.Trailing)
	p.block(depth+1, el.Body)
}

func (p *printer) funcHeader(c context, s *ast.Stmt) {
	for _, d := range s.Decorators {
		p.comments(c.depth, d.Leading)
		p.emit(c, "@", d, "")
		p.w.Comments(d.Trailing)
	}
	p.comments(c.depth, s.HeaderLeading)

	tail := ":"
	if s.Mutability != "" {
		tail = ": " + s.Mutability
	}
	parts := []part{{"", s.Params}}
	if s.Returns != nil {
		parts = append(parts, part{" -> ", s.Returns})
	}
	p.seq(c, "def "+s.Name, parts, tail)
}

// fromImport writes `from m import a, b`, switching to a parenthesized list
// when the line is too long or a comment sits among the names.
func (p *printer) fromImport(c context, s *ast.Stmt) {
	head := "from " + s.Module + " import "
	names := s.Names
	text := head + aliases(names)
	star := len(names.Elts) == 1 && names.Elts[0].Name == "*"
	if star || (!names.HasComments() && p.fits(c.depth, text)) {
		p.w.Line(c.depth, text)
		return
	}
	p.expand(c, head, parenthesized(names), "")
}

func aliases(names *ast.Expr) string {
	parts := make([]string, len(names.Elts))
	for i, el := range names.Elts {
		var b strings.Builder
		writeFlat(&b, el)
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}
