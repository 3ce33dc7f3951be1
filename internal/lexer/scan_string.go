package lexer

import (
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// scanString scans a string literal whose optional prefix starts at m and
// whose opening quote is at the cursor. Escapes are kept verbatim; the
// formatter and comparator decode them.
func (lx *Lexer) scanString(m Mark) (token.Token, bool) {
	quote := lx.cursor.Bump()
	triple := lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote
	if triple {
		lx.cursor.Bump()
		lx.cursor.Bump()
	}

	for {
		if lx.cursor.EOF() {
			return lx.unterminated(m, triple)
		}
		b := lx.cursor.Bump()
		switch {
		case b == '\\':
			if lx.cursor.EOF() {
				return lx.unterminated(m, triple)
			}
			lx.cursor.Bump()
		case b == '\n' && !triple:
			lx.cursor.Off--
			return lx.unterminated(m, triple)
		case b == quote && !triple:
			sp := lx.cursor.SpanFrom(m)
			return token.Token{Kind: token.String, Span: sp, Text: lx.file.Text(sp)}, true
		case b == quote && lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote:
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(m)
			return token.Token{Kind: token.String, Span: sp, Text: lx.file.Text(sp)}, true
		}
	}
}

func (lx *Lexer) unterminated(m Mark, triple bool) (token.Token, bool) {
	sp := lx.cursor.SpanFrom(m)
	sp.End = sp.Start
	if triple {
		lx.fail(diag.LexUnterminatedString, sp, "unterminated triple-quoted string literal")
	} else {
		lx.fail(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	return token.Token{}, false
}
