package lexer

import (
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// scanNumber scans integer and decimal literals:
//
//	123, 1_000, 0x1F, 0o17, 0b1010, 1.5, .5, 1., 1e18, 2.5E-3
func (lx *Lexer) scanNumber() (token.Token, bool) {
	m := lx.cursor.Mark()
	kind := token.Int

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = isOct
		case 'b', 'B':
			digit = isBin
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(digit) {
				return lx.badNumber(m, "invalid radix literal")
			}
			return lx.finishNumber(m, kind)
		}
	}

	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || !isIdentStartByte(next) || lx.exponentAt(1) {
			kind = token.Decimal
			lx.cursor.Bump()
			lx.eatDigits(isDec)
		}
	}
	if lx.exponentAt(0) {
		kind = token.Decimal
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		lx.eatDigits(isDec)
	}
	return lx.finishNumber(m, kind)
}

// exponentAt reports whether an exponent (e5, E+5, e-5) starts n bytes ahead.
func (lx *Lexer) exponentAt(n uint32) bool {
	if b := lx.cursor.PeekAt(n); b != 'e' && b != 'E' {
		return false
	}
	next := lx.cursor.PeekAt(n + 1)
	if next == '+' || next == '-' {
		next = lx.cursor.PeekAt(n + 2)
	}
	return isDec(next)
}

// eatDigits consumes digits with '_' separators; true when at least one
// digit was consumed.
func (lx *Lexer) eatDigits(digit func(byte) bool) bool {
	seen := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			seen = true
		case b == '_' && seen && digit(lx.cursor.PeekAt(1)):
		default:
			return seen
		}
		lx.cursor.Bump()
	}
	return seen
}

func (lx *Lexer) finishNumber(m Mark, kind token.Kind) (token.Token, bool) {
	if b := lx.cursor.Peek(); isIdentContinueByte(b) || b >= 0x80 {
		return lx.badNumber(m, "invalid digit in number literal")
	}
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}, true
}

func (lx *Lexer) badNumber(m Mark, msg string) (token.Token, bool) {
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.fail(diag.LexBadNumber, lx.cursor.SpanFrom(m), "%s", msg)
	return token.Token{}, false
}
