// Package token defines the lexical token kinds of Vyper source.
// Invariants:
//   - Token.Text is the exact source text of the token (empty for NEWLINE at
//     EOF, INDENT, DEDENT and EOF).
//   - Token.Span covers Text exactly.
//   - Comments and blank lines are tokens (Comment, Blank): trivia is never
//     discarded by the lexer, the parser attaches it to syntax nodes.
//   - Soft keywords (struct, interface, event, enum, flag, log, extcall,
//     staticcall, implements, ...) are identifiers; the parser decides by
//     context.
package token
