package lexer

import (
	"mamushi/internal/diag"
	"mamushi/internal/token"
)

// ops lists operators longest first so that a greedy match wins.
var ops = []struct {
	text string
	kind token.Kind
}{
	{"...", token.Ellipsis},
	{"**=", token.StarStarEq},
	{"//=", token.SlashSlashEq},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"->", token.Arrow},
	{":=", token.Walrus},
	{"**", token.StarStar},
	{"//", token.SlashSlash},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentEq},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{",", token.Comma},
	{":", token.Colon},
	{";", token.Semicolon},
	{".", token.Dot},
	{"@", token.At},
	{"=", token.Assign},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
	{"<", token.Lt},
	{">", token.Gt},
}

var closers = map[token.Kind]token.Kind{
	token.RParen:   token.LParen,
	token.RBracket: token.LBracket,
	token.RBrace:   token.LBrace,
}

func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	m := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]
	for _, op := range ops {
		if len(rest) < len(op.text) || string(rest[:len(op.text)]) != op.text {
			continue
		}
		for range len(op.text) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(m)
		tok := token.Token{Kind: op.kind, Span: sp, Text: op.text}
		if !lx.trackBracket(tok) {
			return token.Token{}, false
		}
		return tok, true
	}

	b := lx.cursor.Bump()
	lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(m), "invalid character %s", describeByte(b))
	return token.Token{}, false
}

// trackBracket maintains the open bracket stack; false on a mismatch.
func (lx *Lexer) trackBracket(tok token.Token) bool {
	switch tok.Kind {
	case token.LParen, token.LBracket, token.LBrace:
		lx.brackets = append(lx.brackets, openBracket{kind: tok.Kind, span: tok.Span})
		return true
	case token.RParen, token.RBracket, token.RBrace:
		n := len(lx.brackets)
		if n == 0 {
			lx.fail(diag.LexUnmatchedBracket, tok.Span, "unmatched '%s'", tok.Kind)
			return false
		}
		open := lx.brackets[n-1]
		if closers[tok.Kind] != open.kind {
			lx.fail(diag.LexUnmatchedBracket, tok.Span,
				"closing parenthesis '%s' does not match opening parenthesis '%s'", tok.Kind, open.kind)
			return false
		}
		lx.brackets = lx.brackets[:n-1]
		return true
	}
	return true
}
