package ast

import (
	"mamushi/internal/source"
)

type ExprKind uint8

const (
	ExprName      ExprKind = iota // Name
	ExprInt                       // Value: raw literal text
	ExprDecimal                   // Value
	ExprString                    // Value: raw literal text, prefix and quotes included
	ExprBool                      // Value: "True" or "False"
	ExprEllipsis                  // ...
	ExprStrConcat                 // Elts: adjacent string literals
	ExprAttribute                 // X.Name
	ExprCall                      // X(Elts...)
	ExprKeyword                   // Name=X, only as a call argument
	ExprSubscript                 // X[Y]
	ExprUnary                     // Op X; Op is - + ~ not extcall staticcall
	ExprBinary                    // X Op Y
	ExprBoolOp                    // Elts joined by Op (and, or)
	ExprCompare                   // Elts[0] Ops[0] Elts[1] ...
	ExprTernary                   // X if Y else Z
	ExprNamed                     // X := Y
	ExprTuple                     // Elts; Parens when written with parentheses
	ExprList                      // [Elts]
	ExprDict                      // {Elts}, Elts are ExprPair
	ExprPair                      // X: Y inside a dict
	ExprParen                     // (X)
	ExprParam                     // Name: X [= Y]
	ExprParams                    // (Elts) of a def, Elts are ExprParam
	ExprAlias                     // Name [as AsName] in imports
)

var exprKindNames = [...]string{
	ExprName:      "Name",
	ExprInt:       "Int",
	ExprDecimal:   "Decimal",
	ExprString:    "Str",
	ExprBool:      "Bool",
	ExprEllipsis:  "Ellipsis",
	ExprStrConcat: "StrConcat",
	ExprAttribute: "Attribute",
	ExprCall:      "Call",
	ExprKeyword:   "Keyword",
	ExprSubscript: "Subscript",
	ExprUnary:     "UnaryOp",
	ExprBinary:    "BinOp",
	ExprBoolOp:    "BoolOp",
	ExprCompare:   "Compare",
	ExprTernary:   "IfExp",
	ExprNamed:     "NamedExpr",
	ExprTuple:     "Tuple",
	ExprList:      "List",
	ExprDict:      "Dict",
	ExprPair:      "Pair",
	ExprParen:     "Paren",
	ExprParam:     "Param",
	ExprParams:    "Params",
	ExprAlias:     "Alias",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// IsBracket reports whether k renders as a bracketed element list.
func (k ExprKind) IsBracket() bool {
	switch k {
	case ExprCall, ExprSubscript, ExprTuple, ExprList, ExprDict, ExprParen, ExprParams:
		return true
	}
	return false
}

// Expr is an expression node. Field usage per kind is listed next to the
// kind constants.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Name   string
	AsName string
	Value  string
	Op     string
	Ops    []string

	X, Y, Z *Expr
	Elts    []*Expr
	Parens  bool

	// Leading comments precede the expression inside a bracket list.
	Leading []Trivia
	// Trailing comments follow the expression (and its comma) on the same line.
	Trailing []Trivia
	// Dangling comments sit before the closing bracket of a bracket node.
	Dangling []Trivia
}

// HasComments reports whether e or any of its descendants carries a comment.
func (e *Expr) HasComments() bool {
	if e == nil {
		return false
	}
	if HasComment(e.Leading) || HasComment(e.Trailing) || HasComment(e.Dangling) {
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

// Unparen strips ExprParen wrappers.
func (e *Expr) Unparen() *Expr {
	for e != nil && e.Kind == ExprParen {
		e = e.X
	}
	return e
}
