package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes an indented outline of mod to w, one node per line.
// Trivia is shown as `# comment` and `<blank xN>` entries.
func Dump(w io.Writer, mod *Module) error {
	d := &dumper{w: w}
	d.line(0, "Module %s", strconv.Quote(mod.Path))
	for _, s := range mod.Body {
		d.stmt(1, s)
	}
	d.trivia(1, "trailing", mod.Trailing)
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) line(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) trivia(depth int, label string, ts []Trivia) {
	for _, t := range ts {
		if t.Kind == TriviaComment {
			d.line(depth, "%s %s", label, t.Text)
		} else {
			d.line(depth, "%s <blank x%d>", label, t.Count)
		}
	}
}

func (d *dumper) stmt(depth int, s *Stmt) {
	d.trivia(depth, "leading", s.Leading)
	head := s.Kind.String()
	switch {
	case s.Name != "":
		head += " " + s.Name
	case s.Module != "":
		head += " " + s.Module
	case s.Op != "":
		head += " " + s.Op
	}
	if s.Mutability != "" {
		head += " : " + s.Mutability
	}
	d.line(depth, "%s", head)
	d.trivia(depth+1, "trailing", s.Trailing)

	for _, dec := range s.Decorators {
		d.labeled(depth+1, "decorator", dec)
	}
	d.trivia(depth+1, "leading", s.HeaderLeading)
	d.labeled(depth+1, "names", s.Names)
	d.labeled(depth+1, "params", s.Params)
	d.labeled(depth+1, "returns", s.Returns)
	d.labeled(depth+1, "target", s.Target)
	for _, t := range s.Targets {
		d.labeled(depth+1, "target", t)
	}
	d.labeled(depth+1, "annotation", s.Annotation)
	d.labeled(depth+1, "value", s.Value)
	d.labeled(depth+1, "msg", s.Msg)
	d.block(depth+1, "body", s.Body)
	if e := s.Else; e != nil {
		d.trivia(depth+1, "leading", e.Leading)
		if e.Elif != nil {
			d.line(depth+1, "elif")
			d.stmt(depth+2, e.Elif)
		} else {
			d.trivia(depth+2, "trailing", e.Trailing)
			d.block(depth+1, "else", e.Body)
		}
	}
}

func (d *dumper) block(depth int, label string, b *Block) {
	if b == nil {
		return
	}
	if b.Inline {
		d.line(depth, "%s (inline)", label)
	} else {
		d.line(depth, "%s", label)
	}
	for _, s := range b.Stmts {
		d.stmt(depth+1, s)
	}
	d.trivia(depth+1, "trailing", b.Trailing)
}

func (d *dumper) labeled(depth int, label string, e *Expr) {
	if e == nil {
		return
	}
	d.line(depth, "%s:", label)
	d.expr(depth+1, e)
}

func (d *dumper) expr(depth int, e *Expr) {
	d.trivia(depth, "leading", e.Leading)
	head := e.Kind.String()
	for _, part := range []string{e.Name, e.Value, e.Op, strings.Join(e.Ops, " ")} {
		if part != "" {
			head += " " + part
		}
	}
	if e.AsName != "" {
		head += " as " + e.AsName
	}
	if e.Kind == ExprTuple && e.Parens {
		head += " (parens)"
	}
	d.line(depth, "%s", head)
	d.trivia(depth+1, "trailing", e.Trailing)
	for _, c := range []*Expr{e.X, e.Y, e.Z} {
		if c != nil {
			d.expr(depth+1, c)
		}
	}
	for _, c := range e.Elts {
		d.expr(depth+1, c)
	}
	d.trivia(depth+1, "dangling", e.Dangling)
}
