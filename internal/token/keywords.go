package token

var keywords = map[string]Kind{
	"and":      KwAnd,
	"as":       KwAs,
	"assert":   KwAssert,
	"break":    KwBreak,
	"continue": KwContinue,
	"def":      KwDef,
	"elif":     KwElif,
	"else":     KwElse,
	"for":      KwFor,
	"from":     KwFrom,
	"if":       KwIf,
	"import":   KwImport,
	"in":       KwIn,
	"not":      KwNot,
	"or":       KwOr,
	"pass":     KwPass,
	"raise":    KwRaise,
	"return":   KwReturn,
	"True":     KwTrue,
	"False":    KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if any.
// Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Soft keywords open declarations only in statement position.
const (
	SoftStruct     = "struct"
	SoftInterface  = "interface"
	SoftEvent      = "event"
	SoftEnum       = "enum"
	SoftFlag       = "flag"
	SoftLog        = "log"
	SoftExtcall    = "extcall"
	SoftStaticcall = "staticcall"
)
