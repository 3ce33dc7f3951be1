package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline ends a logical line.
	Newline
	// Indent opens a deeper indentation level.
	Indent
	// Dedent closes one indentation level.
	Dedent
	// Comment is a '#' comment up to the end of the line.
	Comment
	// Blank is one empty (or whitespace only) line.
	Blank

	// Ident represents an identifier token.
	Ident
	// Int is an integer literal (decimal, 0x, 0o, 0b).
	Int
	// Decimal is a fixed point or exponent literal.
	Decimal
	// String is a string literal including its prefix and quotes.
	String

	KwAnd      // and
	KwAs       // as
	KwAssert   // assert
	KwBreak    // break
	KwContinue // continue
	KwDef      // def
	KwElif     // elif
	KwElse     // else
	KwFor      // for
	KwFrom     // from
	KwIf       // if
	KwImport   // import
	KwIn       // in
	KwNot      // not
	KwOr       // or
	KwPass     // pass
	KwRaise    // raise
	KwReturn   // return
	KwTrue     // True
	KwFalse    // False

	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	LBrace       // {
	RBrace       // }
	Comma        // ,
	Colon        // :
	Semicolon    // ;
	Dot          // .
	Ellipsis     // ...
	At           // @
	Assign       // =
	Arrow        // ->
	Walrus       // :=
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	SlashSlash   // //
	Percent      // %
	StarStar     // **
	Shl          // <<
	Shr          // >>
	Amp          // &
	Pipe         // |
	Caret        // ^
	Tilde        // ~
	Lt           // <
	Gt           // >
	LtEq         // <=
	GtEq         // >=
	EqEq         // ==
	BangEq       // !=
	PlusAssign   // +=
	MinusAssign  // -=
	StarAssign   // *=
	SlashAssign  // /=
	SlashSlashEq // //=
	PercentEq    // %=
	StarStarEq   // **=
	ShlAssign    // <<=
	ShrAssign    // >>=
	AmpAssign    // &=
	PipeAssign   // |=
	CaretAssign  // ^=

	kindCount
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Newline:      "NEWLINE",
	Indent:       "INDENT",
	Dedent:       "DEDENT",
	Comment:      "COMMENT",
	Blank:        "BLANK",
	Ident:        "Ident",
	Int:          "Int",
	Decimal:      "Decimal",
	String:       "String",
	KwAnd:        "and",
	KwAs:         "as",
	KwAssert:     "assert",
	KwBreak:      "break",
	KwContinue:   "continue",
	KwDef:        "def",
	KwElif:       "elif",
	KwElse:       "else",
	KwFor:        "for",
	KwFrom:       "from",
	KwIf:         "if",
	KwImport:     "import",
	KwIn:         "in",
	KwNot:        "not",
	KwOr:         "or",
	KwPass:       "pass",
	KwRaise:      "raise",
	KwReturn:     "return",
	KwTrue:       "True",
	KwFalse:      "False",
	LParen:       "(",
	RParen:       ")",
	LBracket:     "[",
	RBracket:     "]",
	LBrace:       "{",
	RBrace:       "}",
	Comma:        ",",
	Colon:        ":",
	Semicolon:    ";",
	Dot:          ".",
	Ellipsis:     "...",
	At:           "@",
	Assign:       "=",
	Arrow:        "->",
	Walrus:       ":=",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	SlashSlash:   "//",
	Percent:      "%",
	StarStar:     "**",
	Shl:          "<<",
	Shr:          ">>",
	Amp:          "&",
	Pipe:         "|",
	Caret:        "^",
	Tilde:        "~",
	Lt:           "<",
	Gt:           ">",
	LtEq:         "<=",
	GtEq:         ">=",
	EqEq:         "==",
	BangEq:       "!=",
	PlusAssign:   "+=",
	MinusAssign:  "-=",
	StarAssign:   "*=",
	SlashAssign:  "/=",
	SlashSlashEq: "//=",
	PercentEq:    "%=",
	StarStarEq:   "**=",
	ShlAssign:    "<<=",
	ShrAssign:    ">>=",
	AmpAssign:    "&=",
	PipeAssign:   "|=",
	CaretAssign:  "^=",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsAugAssign reports whether k is an augmented assignment operator.
func (k Kind) IsAugAssign() bool {
	return k >= PlusAssign && k <= CaretAssign
}

// AugOp returns the binary operator kind behind an augmented assignment
// (PlusAssign -> Plus). Other kinds map to Invalid.
func (k Kind) AugOp() Kind {
	switch k {
	case PlusAssign:
		return Plus
	case MinusAssign:
		return Minus
	case StarAssign:
		return Star
	case SlashAssign:
		return Slash
	case SlashSlashEq:
		return SlashSlash
	case PercentEq:
		return Percent
	case StarStarEq:
		return StarStar
	case ShlAssign:
		return Shl
	case ShrAssign:
		return Shr
	case AmpAssign:
		return Amp
	case PipeAssign:
		return Pipe
	case CaretAssign:
		return Caret
	default:
		return Invalid
	}
}
