package ast

import (
	"mamushi/internal/source"
)

// Module is the root of a parsed file.
type Module struct {
	Path     string
	Body     []*Stmt
	Trailing []Trivia // trivia after the last statement
	Span     source.Span
}

// Block is the indented body of a compound statement.
type Block struct {
	Stmts []*Stmt
	// Trailing holds comments after the last statement that are indented at
	// least as deep as the block.
	Trailing []Trivia
	// Inline is set for bodies written on the header line (`if x: pass`).
	Inline bool
}

// ElseClause is the `elif`/`else` tail of an if statement.
type ElseClause struct {
	Leading  []Trivia // comments between the previous body and the keyword
	Trailing []Trivia // comment on the `else:` line
	Elif     *Stmt    // StmtIf for `elif`; nil for `else`
	Body     *Block   // body of `else`
	Span     source.Span
}
