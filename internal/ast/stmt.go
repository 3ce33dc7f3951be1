package ast

import (
	"mamushi/internal/source"
)

type StmtKind uint8

const (
	StmtImport     StmtKind = iota // import a.b as c
	StmtFromImport                 // from .a import b, c
	StmtDecl                       // x: T [= v]
	StmtAssign                     // a = b
	StmtAugAssign                  // a += b
	StmtExpr                       // call(), docstrings, flag members
	StmtPass
	StmtBreak
	StmtContinue
	StmtReturn
	StmtRaise
	StmtAssert
	StmtLog
	StmtIf
	StmtFor
	StmtFunc
	StmtStruct
	StmtInterface
	StmtEvent
	StmtEnum
	StmtFlag
)

var stmtKindNames = [...]string{
	StmtImport:     "Import",
	StmtFromImport: "FromImport",
	StmtDecl:       "Decl",
	StmtAssign:     "Assign",
	StmtAugAssign:  "AugAssign",
	StmtExpr:       "ExprStmt",
	StmtPass:       "Pass",
	StmtBreak:      "Break",
	StmtContinue:   "Continue",
	StmtReturn:     "Return",
	StmtRaise:      "Raise",
	StmtAssert:     "Assert",
	StmtLog:        "Log",
	StmtIf:         "If",
	StmtFor:        "For",
	StmtFunc:       "FunctionDef",
	StmtStruct:     "StructDef",
	StmtInterface:  "InterfaceDef",
	StmtEvent:      "EventDef",
	StmtEnum:       "EnumDef",
	StmtFlag:       "FlagDef",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

// IsCompound reports whether statements of kind k own a body.
func (k StmtKind) IsCompound() bool {
	switch k {
	case StmtIf, StmtFor, StmtFunc, StmtStruct, StmtInterface, StmtEvent, StmtEnum, StmtFlag:
		return true
	}
	return false
}

// Keyword returns the leading keyword of definitions and simple keyword
// statements, or "" for kinds that start with an expression.
func (k StmtKind) Keyword() string {
	switch k {
	case StmtPass:
		return "pass"
	case StmtBreak:
		return "break"
	case StmtContinue:
		return "continue"
	case StmtReturn:
		return "return"
	case StmtRaise:
		return "raise"
	case StmtAssert:
		return "assert"
	case StmtLog:
		return "log"
	case StmtIf:
		return "if"
	case StmtFor:
		return "for"
	case StmtFunc:
		return "def"
	case StmtStruct:
		return "struct"
	case StmtInterface:
		return "interface"
	case StmtEvent:
		return "event"
	case StmtEnum:
		return "enum"
	case StmtFlag:
		return "flag"
	case StmtImport:
		return "import"
	case StmtFromImport:
		return "from"
	}
	return ""
}

// Stmt is a statement. Which fields are set depends on Kind:
//
//	Import      Names (Tuple of Alias)
//	FromImport  Module, Names (Tuple of Alias, Parens when written with parens)
//	Decl        Target, Annotation, Value (optional)
//	Assign      Targets, Value
//	AugAssign   Target, Op, Value
//	Expr        Value
//	Return      Value (optional)
//	Raise       Value (optional)
//	Assert      Value, Msg (optional)
//	Log         Value
//	If          Value (test), Body, Else
//	For         Target (Name or Param), Value (iterable), Body
//	Func        Decorators, Name, Params, Returns, Body or Mutability
//	Struct/Interface/Event/Enum/Flag  Name, Body
type Stmt struct {
	Kind StmtKind
	Span source.Span

	Leading  []Trivia // comments and blank lines before the statement
	Trailing []Trivia // comment at the end of the (header) line

	Name       string
	Module     string // dotted module of a from-import, leading dots included
	Names      *Expr
	Target     *Expr
	Targets    []*Expr
	Annotation *Expr
	Op         string
	Value      *Expr
	Msg        *Expr

	Decorators    []*Expr
	HeaderLeading []Trivia // comments between the decorators and `def`
	Params        *Expr    // ExprParams
	Returns       *Expr
	Mutability    string // interface members: `def f(): view`

	Body *Block
	Else *ElseClause
}

// BlankLines returns the length of the blank run directly before s.
func (s *Stmt) BlankLines() int {
	n := 0
	for i := len(s.Leading) - 1; i >= 0; i-- {
		if s.Leading[i].Kind != TriviaBlank {
			break
		}
		n += s.Leading[i].Count
	}
	return n
}
