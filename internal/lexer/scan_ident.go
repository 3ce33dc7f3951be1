package lexer

import (
	"fmt"

	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// scanIdentOrKeyword scans an identifier, a keyword, or a prefixed string
// literal such as b"..." or x"...".
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool) {
	m := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		lx.bumpRune()
		lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(m), "invalid character '%c' (%U)", r, r)
		return token.Token{}, false
	}
	lx.bumpRune()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < 0x80 {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(m)
	text := lx.file.Text(sp)
	if isStringPrefix(text) {
		if q := lx.cursor.Peek(); q == '"' || q == '\'' {
			return lx.scanString(m)
		}
	}
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}, true
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}, true
}

func describeByte(b byte) string {
	return fmt.Sprintf("'%c' (%U)", rune(b), rune(b))
}
