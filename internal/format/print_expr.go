package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"mamushi/internal/ast"
)

// context is the position an expression is printed at.
type context struct {
	depth int
	// bracketed is set inside brackets, where a line may break anywhere.
	bracketed bool
}

func (c context) nested() context {
	return context{depth: c.depth + 1, bracketed: true}
}

// fits reports whether text fits on one line at the given depth.
func (p *printer) fits(depth int, text string) bool {
	if strings.IndexByte(text, '\n') >= 0 {
		return false
	}
	return depth*IndentWidth+runewidth.StringWidth(text) <= p.opt.MaxWidth
}

// emit writes head, e and tail as one or more lines. The flat shape is used
// when it fits and no comment is inside e; otherwise e is expanded. The
// comments owned by e itself (Leading, Trailing) are written by the caller.
func (p *printer) emit(c context, head string, e *ast.Expr, tail string) {
	if !innerComments(e) {
		if text := head + p.flat(e) + tail; p.fits(c.depth, text) {
			p.w.Line(c.depth, text)
			return
		}
	}

	switch e.Kind {
	case ast.ExprCall, ast.ExprSubscript, ast.ExprList, ast.ExprDict,
		ast.ExprParen, ast.ExprParams:
		p.expand(c, head, e, tail)
	case ast.ExprTuple:
		if !e.Parens {
			e = parenthesized(e)
		}
		p.expand(c, head, e, tail)
	case ast.ExprBinary, ast.ExprBoolOp, ast.ExprCompare, ast.ExprTernary, ast.ExprStrConcat:
		if !c.bracketed {
			p.expand(c, head, &ast.Expr{Kind: ast.ExprParen, X: e, Span: e.Span}, tail)
			return
		}
		p.chain(c, head, e, tail)
	case ast.ExprAttribute:
		p.emit(c, head, e.X, attrDot(e.X)+e.Name+tail)
	case ast.ExprUnary:
		p.emit(c, head+unaryOp(e.Op), e.X, tail)
	case ast.ExprKeyword:
		p.emit(c, head+e.Name+"=", e.X, tail)
	case ast.ExprNamed:
		p.emit(c, head+p.flat(e.X)+" := ", e.Y, tail)
	case ast.ExprPair:
		p.seq(c, head, []part{{"", e.X}, {": ", e.Y}}, tail)
	case ast.ExprParam:
		p.param(c, head, e, tail)
	default:
		p.w.Line(c.depth, head+p.flat(e)+tail)
	}
}

// attrDot is the separator before an attribute name. A number receiver keeps
// a space so that `1 .e5` does not re-lex as the literal `1.e5`.
func attrDot(x *ast.Expr) string {
	if x.Kind == ast.ExprInt || x.Kind == ast.ExprDecimal {
		return " ."
	}
	return "."
}

func parenthesized(e *ast.Expr) *ast.Expr {
	cp := *e
	cp.Parens = true
	return &cp
}

// innerComments reports whether a comment sits inside e, not counting the
// comments e carries as a list element.
func innerComments(e *ast.Expr) bool {
	if ast.HasComment(e.Dangling) {
		return true
	}
	if e.X.HasComments() || e.Y.HasComments() || e.Z.HasComments() {
		return true
	}
	for _, el := range e.Elts {
		if el.HasComments() {
			return true
		}
	}
	return false
}

// expand writes a bracket node one element per line.
func (p *printer) expand(c context, head string, e *ast.Expr, tail string) {
	open, close := brackets(e)
	items, comma := elements(e)
	if len(items) == 0 && !ast.HasComment(e.Dangling) {
		if e.X != nil {
			p.emit(c, head, e.X, open+close+tail)
		} else {
			p.w.Line(c.depth, head+open+close+tail)
		}
		return
	}

	if e.X != nil && e.Kind != ast.ExprParen {
		p.emit(c, head, e.X, open)
	} else {
		p.w.Line(c.depth, head+open)
	}
	depth := p.w.Depth()
	inner := context{depth: depth}.nested()
	for i, el := range items {
		p.comments(inner.depth, el.Leading)
		sep := ","
		if i == len(items)-1 && !comma {
			sep = ""
		}
		p.emit(inner, "", el, sep)
		p.w.Comments(el.Trailing)
	}
	p.comments(inner.depth, e.Dangling)
	p.w.Line(depth, close+tail)
}

func brackets(e *ast.Expr) (open, close string) {
	switch e.Kind {
	case ast.ExprSubscript, ast.ExprList:
		return "[", "]"
	case ast.ExprDict:
		return "{", "}"
	}
	return "(", ")"
}

// elements returns the items of a bracket node and whether an expanded
// rendering ends with a comma.
func elements(e *ast.Expr) ([]*ast.Expr, bool) {
	switch e.Kind {
	case ast.ExprParen:
		return []*ast.Expr{e.X}, false
	case ast.ExprSubscript:
		if e.Y.Kind == ast.ExprTuple && !e.Y.Parens {
			return e.Y.Elts, TrailingComma
		}
		return []*ast.Expr{e.Y}, false
	case ast.ExprTuple:
		// A one-element tuple needs its comma whatever the policy says.
		return e.Elts, TrailingComma || len(e.Elts) == 1
	}
	return e.Elts, TrailingComma
}

// chain writes an operator chain with one operand per line, breaking before
// each operator. Only valid inside brackets.
func (p *printer) chain(c context, head string, e *ast.Expr, tail string) {
	operands, ops := chainParts(e)
	for i, x := range operands {
		h, t := "", ""
		if i == 0 {
			h = head
		} else if ops[i-1] != "" {
			h = ops[i-1] + " "
		}
		if i == len(operands)-1 {
			t = tail
		}
		p.emit(c, h, x, t)
	}
}

// chainParts flattens e into operands and the operators between them.
// Left-nested binary operations of the same precedence join one chain.
func chainParts(e *ast.Expr) ([]*ast.Expr, []string) {
	switch e.Kind {
	case ast.ExprBinary:
		if e.Op == "**" {
			return []*ast.Expr{e.X, e.Y}, []string{e.Op}
		}
		prec := ast.BinaryPrec(e.Op)
		var (
			operands []*ast.Expr
			ops      []string
		)
		x := e
		for x.Kind == ast.ExprBinary && x.Op != "**" && ast.BinaryPrec(x.Op) == prec {
			operands = append(operands, x.Y)
			ops = append(ops, x.Op)
			x = x.X
		}
		operands = append(operands, x)
		reverse(operands)
		reverse(ops)
		return operands, ops
	case ast.ExprBoolOp:
		ops := make([]string, len(e.Elts)-1)
		for i := range ops {
			ops[i] = e.Op
		}
		return e.Elts, ops
	case ast.ExprCompare:
		return e.Elts, e.Ops
	case ast.ExprTernary:
		return []*ast.Expr{e.X, e.Y, e.Z}, []string{"if", "else"}
	case ast.ExprStrConcat:
		return e.Elts, make([]string, len(e.Elts)-1)
	}
	return []*ast.Expr{e}, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// part is one piece of a sequence: literal text followed by an expression.
type part struct {
	prefix string
	e      *ast.Expr
}

// seq writes parts one after another, each continuing the last line of the
// previous one. Every part is flat or expanded on its own.
func (p *printer) seq(c context, head string, parts []part, tail string) {
	h := head + parts[0].prefix
	for i, pt := range parts {
		t := tail
		if i+1 < len(parts) {
			t = parts[i+1].prefix
		}
		p.emit(c, h, pt.e, t)
		if i+1 < len(parts) {
			c.depth, h = p.w.Pop()
		}
	}
}

func (p *printer) param(c context, head string, e *ast.Expr, tail string) {
	var parts []part
	switch {
	case e.X != nil && e.Y != nil:
		parts = []part{{e.Name + ": ", e.X}, {" = ", e.Y}}
	case e.X != nil:
		parts = []part{{e.Name + ": ", e.X}}
	case e.Y != nil:
		parts = []part{{e.Name + "=", e.Y}}
	default:
		p.w.Line(c.depth, head+e.Name+tail)
		return
	}
	p.seq(c, head, parts, tail)
}

func unaryOp(op string) string {
	switch op {
	case "-", "+", "~":
		return op
	}
	return op + " "
}

// flat renders e on a single line, ignoring comments.
func (p *printer) flat(e *ast.Expr) string {
	var b strings.Builder
	writeFlat(&b, e)
	return b.String()
}

func writeFlat(b *strings.Builder, e *ast.Expr) {
	switch e.Kind {
	case ast.ExprName:
		b.WriteString(e.Name)
	case ast.ExprBool:
		b.WriteString(e.Value)
	case ast.ExprEllipsis:
		b.WriteString("...")
	case ast.ExprInt, ast.ExprDecimal:
		b.WriteString(normalizeNumber(e.Value))
	case ast.ExprString:
		b.WriteString(normalizeString(e.Value))
	case ast.ExprStrConcat:
		writeJoined(b, e.Elts, " ")
	case ast.ExprAttribute:
		writeFlat(b, e.X)
		b.WriteString(attrDot(e.X))
		b.WriteString(e.Name)
	case ast.ExprCall:
		writeFlat(b, e.X)
		b.WriteByte('(')
		writeJoined(b, e.Elts, ", ")
		b.WriteByte(')')
	case ast.ExprKeyword:
		b.WriteString(e.Name)
		b.WriteByte('=')
		writeFlat(b, e.X)
	case ast.ExprSubscript:
		writeFlat(b, e.X)
		b.WriteByte('[')
		writeFlat(b, e.Y)
		b.WriteByte(']')
	case ast.ExprUnary:
		b.WriteString(unaryOp(e.Op))
		writeFlat(b, e.X)
	case ast.ExprBinary:
		writeFlat(b, e.X)
		b.WriteString(" " + e.Op + " ")
		writeFlat(b, e.Y)
	case ast.ExprBoolOp:
		writeJoined(b, e.Elts, " "+e.Op+" ")
	case ast.ExprCompare:
		writeFlat(b, e.Elts[0])
		for i, op := range e.Ops {
			b.WriteString(" " + op + " ")
			writeFlat(b, e.Elts[i+1])
		}
	case ast.ExprTernary:
		writeFlat(b, e.X)
		b.WriteString(" if ")
		writeFlat(b, e.Y)
		b.WriteString(" else ")
		writeFlat(b, e.Z)
	case ast.ExprNamed:
		writeFlat(b, e.X)
		b.WriteString(" := ")
		writeFlat(b, e.Y)
	case ast.ExprTuple:
		if e.Parens {
			b.WriteByte('(')
		}
		writeJoined(b, e.Elts, ", ")
		if len(e.Elts) == 1 {
			b.WriteByte(',')
		}
		if e.Parens {
			b.WriteByte(')')
		}
	case ast.ExprList:
		b.WriteByte('[')
		writeJoined(b, e.Elts, ", ")
		b.WriteByte(']')
	case ast.ExprDict:
		b.WriteByte('{')
		writeJoined(b, e.Elts, ", ")
		b.WriteByte('}')
	case ast.ExprPair:
		writeFlat(b, e.X)
		b.WriteString(": ")
		writeFlat(b, e.Y)
	case ast.ExprParen:
		b.WriteByte('(')
		writeFlat(b, e.X)
		b.WriteByte(')')
	case ast.ExprParam:
		b.WriteString(e.Name)
		if e.X != nil {
			b.WriteString(": ")
			writeFlat(b, e.X)
		}
		if e.Y != nil {
			if e.X != nil {
				b.WriteString(" = ")
			} else {
				b.WriteByte('=')
			}
			writeFlat(b, e.Y)
		}
	case ast.ExprParams:
		b.WriteByte('(')
		writeJoined(b, e.Elts, ", ")
		b.WriteByte(')')
	case ast.ExprAlias:
		b.WriteString(e.Name)
		if e.AsName != "" {
			b.WriteString(" as ")
			b.WriteString(e.AsName)
		}
	}
}

func writeJoined(b *strings.Builder, elts []*ast.Expr, sep string) {
	for i, el := range elts {
		if i > 0 {
			b.WriteString(sep)
		}
		writeFlat(b, el)
	}
}
