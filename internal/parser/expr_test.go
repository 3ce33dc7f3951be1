package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"mamushi/internal/ast"
	"mamushi/internal/parser"
)

// sexpr renders an expression as a compact s-expression for assertions.
func sexpr(e *ast.Expr) string {
	if e == nil {
		return "nil"
	}
	list := func(head string, elts []*ast.Expr) string {
		parts := []string{head}
		for _, el := range elts {
			parts = append(parts, sexpr(el))
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	switch e.Kind {
	case ast.ExprName:
		return e.Name
	case ast.ExprInt, ast.ExprDecimal, ast.ExprString, ast.ExprBool:
		return e.Value
	case ast.ExprEllipsis:
		return "..."
	case ast.ExprStrConcat:
		return list("concat", e.Elts)
	case ast.ExprAttribute:
		return fmt.Sprintf("(. %s %s)", sexpr(e.X), e.Name)
	case ast.ExprCall:
		return list("call "+sexpr(e.X), e.Elts)
	case ast.ExprKeyword:
		return fmt.Sprintf("(kw %s %s)", e.Name, sexpr(e.X))
	case ast.ExprSubscript:
		return fmt.Sprintf("([] %s %s)", sexpr(e.X), sexpr(e.Y))
	case ast.ExprUnary:
		return fmt.Sprintf("(%s %s)", e.Op, sexpr(e.X))
	case ast.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", e.Op, sexpr(e.X), sexpr(e.Y))
	case ast.ExprBoolOp:
		return list(e.Op, e.Elts)
	case ast.ExprCompare:
		parts := []string{sexpr(e.Elts[0])}
		for i, op := range e.Ops {
			parts = append(parts, op, sexpr(e.Elts[i+1]))
		}
		return "(cmp " + strings.Join(parts, " ") + ")"
	case ast.ExprTernary:
		return fmt.Sprintf("(if %s %s %s)", sexpr(e.Y), sexpr(e.X), sexpr(e.Z))
	case ast.ExprNamed:
		return fmt.Sprintf("(:= %s %s)", sexpr(e.X), sexpr(e.Y))
	case ast.ExprTuple:
		if e.Parens {
			return list("tuple()", e.Elts)
		}
		return list("tuple", e.Elts)
	case ast.ExprList:
		return list("list", e.Elts)
	case ast.ExprDict:
		return list("dict", e.Elts)
	case ast.ExprPair:
		return fmt.Sprintf("(: %s %s)", sexpr(e.X), sexpr(e.Y))
	case ast.ExprParen:
		return fmt.Sprintf("(paren %s)", sexpr(e.X))
	case ast.ExprParam:
		return fmt.Sprintf("(param %s %s %s)", e.Name, sexpr(e.X), sexpr(e.Y))
	case ast.ExprParams:
		return list("params", e.Elts)
	case ast.ExprAlias:
		if e.AsName != "" {
			return e.Name + " as " + e.AsName
		}
		return e.Name
	}
	return "?"
}

func parseOK(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := parser.ParseString("test.vy", src)
	if err != nil {
		t.Fatalf("parse failed: %v\nsource:\n%s", err, src)
	}
	return mod
}

func exprOf(t *testing.T, src string) *ast.Expr {
	t.Helper()
	mod := parseOK(t, "x = "+src+"\n")
	return mod.Body[0].Value
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"a - b - c", "(- (- a b) c)"},
		{"a ** b ** c", "(** a (** b c))"},
		{"-a ** b", "(- (** a b))"},
		{"a | b ^ c & d << 1 + 2", "(| a (^ b (& c (<< d (+ 1 2)))))"},
		{"not a == b", "(not (cmp a == b))"},
		{"a < b <= c", "(cmp a < b <= c)"},
		{"a not in b", "(cmp a not in b)"},
		{"a and b or c and d", "(or (and a b) (and c d))"},
		{"a or b or c", "(or a b c)"},
		{"a if b else c if d else e", "(if b a (if d c e))"},
		{"x.y(1, z=2)[0]", "([] (call (. x y) 1 (kw z 2)) 0)"},
		{"HashMap[address, uint256]", "([] HashMap (tuple address uint256))"},
		{"(a)", "(paren a)"},
		{"(a,)", "(tuple() a)"},
		{"()", "(tuple())"},
		{"[1, 2]", "(list 1 2)"},
		{"{a: 1, b: 2}", "(dict (: a 1) (: b 2))"},
		{`"a" "b"`, `(concat "a" "b")`},
		{"extcall token.transfer(to, amount)", "(extcall (call (. token transfer) to amount))"},
		{"staticcall self.oracle.price() + 1", "(+ (staticcall (call (. (. self oracle) price))) 1)"},
		{"f((y := 2))", "(call f (paren (:= y 2)))"},
		{"~a // b % c", "(% (// (~ a) b) c)"},
		{"erc20[ownable := ownable]", "([] erc20 (:= ownable ownable))"},
		{"m[a := b, c := d]", "([] m (tuple (:= a b) (:= c d)))"},
		{"1 .e5", "(. 1 e5)"},
		{"0. .A", "(. 0. A)"},
		{"...", "..."},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := sexpr(exprOf(t, tt.src)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBareTupleValue(t *testing.T) {
	mod := parseOK(t, "a, b = b, a\nreturn_value: uint256 = 1,\n")
	s := mod.Body[0]
	if got := sexpr(s.Targets[0]); got != "(tuple a b)" {
		t.Errorf("targets: %s", got)
	}
	if got := sexpr(s.Value); got != "(tuple b a)" {
		t.Errorf("value: %s", got)
	}
	if got := sexpr(mod.Body[1].Value); got != "(tuple 1)" {
		t.Errorf("trailing comma tuple: %s", got)
	}
}

func TestModuleInitialization(t *testing.T) {
	mod := parseOK(t, "import ownable\nimport erc20\n\ninitializes: ownable\ninitializes: erc20[ownable := ownable]\n")
	s := mod.Body[3]
	if s.Kind != ast.StmtDecl || sexpr(s.Target) != "initializes" {
		t.Fatalf("got %s %s", s.Kind, sexpr(s.Target))
	}
	if got := sexpr(s.Annotation); got != "([] erc20 (:= ownable ownable))" {
		t.Errorf("annotation: %s", got)
	}
}

func TestEllipsisBodies(t *testing.T) {
	mod := parseOK(t, "@external\n@view\ndef balanceOf(owner: address) -> uint256:\n    ...\n\n@external\ndef foo(): ...\n")
	for i, fn := range mod.Body {
		if fn.Kind != ast.StmtFunc || len(fn.Body.Stmts) != 1 {
			t.Fatalf("statement %d: %s", i, fn.Kind)
		}
		body := fn.Body.Stmts[0]
		if body.Kind != ast.StmtExpr || body.Value.Kind != ast.ExprEllipsis {
			t.Errorf("statement %d body: %s %s", i, body.Kind, sexpr(body.Value))
		}
	}
}
