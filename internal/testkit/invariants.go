// Package testkit holds structural checks shared by parser and fuzz tests.
package testkit

import (
	"fmt"

	"mamushi/internal/ast"
	"mamushi/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every statement and expression span is well formed and inside the file
// 2) statements of one body start in source order
// 3) the module span covers every top-level statement
func CheckSpanInvariants(mod *ast.Module, sf *source.File) error {
	if mod == nil || sf == nil {
		return fmt.Errorf("nil module or file")
	}
	c := checker{size: sf.Len()}
	if err := c.span("module", mod.Span); err != nil {
		return err
	}
	if err := c.stmts(mod.Body); err != nil {
		return err
	}
	for _, s := range mod.Body {
		if s.Span.Start < mod.Span.Start || s.Span.End > mod.Span.End {
			return fmt.Errorf("%s span %v is outside module span %v", s.Kind, s.Span, mod.Span)
		}
	}
	return nil
}

type checker struct {
	size uint32
}

func (c checker) span(what string, sp source.Span) error {
	if sp.Start > sp.End {
		return fmt.Errorf("%s span is inverted: %v", what, sp)
	}
	if sp.End > c.size {
		return fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, c.size)
	}
	return nil
}

func (c checker) stmts(list []*ast.Stmt) error {
	var prev *ast.Stmt
	for _, s := range list {
		if s == nil {
			return fmt.Errorf("nil statement")
		}
		if err := c.stmt(s); err != nil {
			return err
		}
		if prev != nil && s.Span.Start < prev.Span.Start {
			return fmt.Errorf("%s at %v starts before preceding %s at %v", s.Kind, s.Span, prev.Kind, prev.Span)
		}
		prev = s
	}
	return nil
}

func (c checker) stmt(s *ast.Stmt) error {
	if err := c.span(s.Kind.String(), s.Span); err != nil {
		return err
	}
	exprs := []*ast.Expr{s.Names, s.Target, s.Annotation, s.Value, s.Msg, s.Params, s.Returns}
	exprs = append(exprs, s.Targets...)
	exprs = append(exprs, s.Decorators...)
	for _, e := range exprs {
		if err := c.expr(e); err != nil {
			return err
		}
	}
	if s.Body != nil {
		if err := c.stmts(s.Body.Stmts); err != nil {
			return err
		}
	}
	if el := s.Else; el != nil {
		if el.Elif != nil {
			return c.stmt(el.Elif)
		}
		if el.Body != nil {
			return c.stmts(el.Body.Stmts)
		}
	}
	return nil
}

func (c checker) expr(e *ast.Expr) error {
	if e == nil {
		return nil
	}
	if err := c.span(e.Kind.String(), e.Span); err != nil {
		return err
	}
	for _, sub := range []*ast.Expr{e.X, e.Y, e.Z} {
		if err := c.expr(sub); err != nil {
			return err
		}
	}
	for _, el := range e.Elts {
		if err := c.expr(el); err != nil {
			return err
		}
	}
	return nil
}
