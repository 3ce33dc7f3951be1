package token

import (
	"mamushi/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// OwnLine is set on Comment tokens that are the first thing on their line.
	OwnLine bool
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Int, Decimal, String, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a hard keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAnd && t.Kind <= KwFalse
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind < kindCount
}

// IsTrivia reports whether the token is a comment or a blank line.
func (t Token) IsTrivia() bool {
	return t.Kind == Comment || t.Kind == Blank
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
