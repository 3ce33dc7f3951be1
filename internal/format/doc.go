// Package format renders a parsed module in canonical layout.
//
// Every composite node has two shapes: flat (one line) and expanded (one
// element per line, one level deeper). The printer tries the flat shape
// first and falls back to the expanded one when the line would exceed the
// width or when a comment sits inside the node.
//
// Назначение: каноническая печать AST с учётом ширины строки и комментариев.
// Не делает: проверку эквивалентности (см. internal/compare) и файловый IO.
// Зависимости: internal/ast, internal/parser, go-runewidth.
package format
