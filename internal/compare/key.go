package compare

import (
	"strings"

	"mamushi/internal/ast"
)

// Key is the layout-free projection of a syntax node.
type Key struct {
	Kind     string
	Value    string
	Children []Key
}

var nilKey = Key{Kind: "-"}

func (k Key) String() string {
	if k.Value == "" {
		return k.Kind
	}
	return k.Kind + " " + k.Value
}

// Equal reports whether a and b are the same tree.
func (k Key) Equal(o Key) bool {
	if k.Kind != o.Kind || k.Value != o.Value || len(k.Children) != len(o.Children) {
		return false
	}
	for i := range k.Children {
		if !k.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Project builds the Key tree of a module.
func Project(mod *ast.Module) Key {
	k := Key{Kind: "Module"}
	for _, s := range mod.Body {
		k.Children = append(k.Children, stmtKey(s))
	}
	return k
}

func stmtKey(s *ast.Stmt) Key {
	k := Key{Kind: s.Kind.String()}
	add := func(keys ...Key) { k.Children = append(k.Children, keys...) }

	switch s.Kind {
	case ast.StmtImport, ast.StmtFromImport:
		k.Value = s.Module
		add(exprKeys(s.Names.Elts)...)
	case ast.StmtDecl:
		add(exprKey(s.Target), exprKey(s.Annotation), exprKey(s.Value))
	case ast.StmtAssign:
		add(exprKeys(s.Targets)...)
		add(exprKey(s.Value))
	case ast.StmtAugAssign:
		k.Value = s.Op
		add(exprKey(s.Target), exprKey(s.Value))
	case ast.StmtExpr, ast.StmtReturn, ast.StmtRaise, ast.StmtLog:
		add(exprKey(s.Value))
	case ast.StmtAssert:
		add(exprKey(s.Value), exprKey(s.Msg))
	case ast.StmtIf:
		add(exprKey(s.Value), blockKey(s.Body), elseKey(s.Else))
	case ast.StmtFor:
		add(exprKey(s.Target), exprKey(s.Value), blockKey(s.Body))
	case ast.StmtFunc:
		k.Value = s.Name
		add(Key{Kind: "Decorators", Children: exprKeys(s.Decorators)})
		add(exprKey(s.Params), exprKey(s.Returns))
		if s.Mutability != "" {
			// `def f(): view` and a body holding the bare name are the same
			// member declaration.
			add(Key{Kind: "Body", Children: []Key{{
				Kind:     ast.StmtExpr.String(),
				Children: []Key{{Kind: ast.ExprName.String(), Value: s.Mutability}},
			}}})
		} else {
			add(blockKey(s.Body))
		}
	case ast.StmtStruct, ast.StmtInterface, ast.StmtEvent, ast.StmtEnum, ast.StmtFlag:
		k.Value = s.Name
		add(blockKey(s.Body))
	}
	return k
}

func blockKey(b *ast.Block) Key {
	k := Key{Kind: "Body"}
	if b == nil {
		return k
	}
	for _, s := range b.Stmts {
		k.Children = append(k.Children, stmtKey(s))
	}
	return k
}

func elseKey(c *ast.ElseClause) Key {
	switch {
	case c == nil:
		return nilKey
	case c.Elif != nil:
		return Key{Kind: "Elif", Children: []Key{stmtKey(c.Elif)}}
	}
	return Key{Kind: "Else", Children: []Key{blockKey(c.Body)}}
}

func exprKeys(es []*ast.Expr) []Key {
	keys := make([]Key, len(es))
	for i, e := range es {
		keys[i] = exprKey(e)
	}
	return keys
}

func exprKey(e *ast.Expr) Key {
	e = e.Unparen()
	if e == nil {
		return nilKey
	}
	k := Key{Kind: e.Kind.String()}
	switch e.Kind {
	case ast.ExprName:
		k.Value = e.Name
	case ast.ExprInt, ast.ExprDecimal:
		k.Value = numberValue(e.Value)
	case ast.ExprString:
		k.Value = stringValue(e.Value)
	case ast.ExprBool:
		k.Value = e.Value
	case ast.ExprAttribute, ast.ExprKeyword:
		k.Value = e.Name
		k.Children = []Key{exprKey(e.X)}
	case ast.ExprUnary:
		k.Value = e.Op
		k.Children = []Key{exprKey(e.X)}
	case ast.ExprBinary:
		k.Value = e.Op
		k.Children = []Key{exprKey(e.X), exprKey(e.Y)}
	case ast.ExprBoolOp:
		k.Value = e.Op
		k.Children = exprKeys(e.Elts)
	case ast.ExprCompare:
		k.Value = strings.Join(e.Ops, " ")
		k.Children = exprKeys(e.Elts)
	case ast.ExprCall:
		k.Children = append([]Key{exprKey(e.X)}, exprKeys(e.Elts)...)
	case ast.ExprSubscript, ast.ExprNamed, ast.ExprPair:
		k.Children = []Key{exprKey(e.X), exprKey(e.Y)}
	case ast.ExprTernary:
		k.Children = []Key{exprKey(e.X), exprKey(e.Y), exprKey(e.Z)}
	case ast.ExprParam:
		k.Value = e.Name
		k.Children = []Key{exprKey(e.X), exprKey(e.Y)}
	case ast.ExprAlias:
		k.Value = e.Name
		if e.AsName != "" {
			k.Value += " as " + e.AsName
		}
	default:
		k.Children = exprKeys(e.Elts)
	}
	return k
}
