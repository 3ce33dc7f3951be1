package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexInconsistentDedent Code = 1004
	LexUnclosedBracket    Code = 1005
	LexUnmatchedBracket   Code = 1006
	LexBadContinuation    Code = 1007
	LexUnexpectedIndent   Code = 1008

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectExpression  Code = 2003
	SynExpectColon       Code = 2004
	SynExpectNewline     Code = 2005
	SynExpectIndent      Code = 2006
	SynExpectRightParen  Code = 2007
	SynExpectRightBrack  Code = 2008
	SynExpectRightBrace  Code = 2009
	SynBadAssignTarget   Code = 2010
	SynExpectDef         Code = 2011
	SynExpectIn          Code = 2012
	SynExpectImport      Code = 2013
	SynUnexpectedTopItem Code = 2014

	// Safety gate
	SafetyInfo          Code = 3000
	SafetyASTChanged    Code = 3001
	SafetyReparseFailed Code = 3002

	// I/O
	IOInfo        Code = 4000
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Internal engine failures
	InternalInfo  Code = 5000
	InternalPanic Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Invalid character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed number literal",
	LexInconsistentDedent: "Unindent does not match any outer indentation level",
	LexUnclosedBracket:    "Unclosed bracket",
	LexUnmatchedBracket:   "Unmatched closing bracket",
	LexBadContinuation:    "Unexpected character after line continuation",
	LexUnexpectedIndent:   "Unexpected indent",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectExpression:   "Expected expression",
	SynExpectColon:        "Expected ':'",
	SynExpectNewline:      "Expected end of line",
	SynExpectIndent:       "Expected an indented block",
	SynExpectRightParen:   "Expected ')'",
	SynExpectRightBrack:   "Expected ']'",
	SynExpectRightBrace:   "Expected '}'",
	SynBadAssignTarget:    "Invalid assignment target",
	SynExpectDef:          "Expected 'def' after decorators",
	SynExpectIn:           "Expected 'in'",
	SynExpectImport:       "Expected 'import'",
	SynUnexpectedTopItem:  "Unexpected top-level construct",
	SafetyInfo:            "Safety information",
	SafetyASTChanged:      "Formatting changed the AST",
	SafetyReparseFailed:   "Formatted output does not parse",
	IOInfo:                "I/O information",
	IOReadFailed:          "Unable to read file",
	IOWriteFailed:         "Unable to write file",
	InternalInfo:          "Internal information",
	InternalPanic:         "Internal formatter error",
}

// Phase groups codes by the pipeline stage that produces them.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseLex
	PhaseSyntax
	PhaseSafety
	PhaseIO
	PhaseInternal
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lex"
	case PhaseSyntax:
		return "syntax"
	case PhaseSafety:
		return "safety"
	case PhaseIO:
		return "io"
	case PhaseInternal:
		return "internal"
	}
	return "unknown"
}

func (c Code) Phase() Phase {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return PhaseLex
	case ic >= 2000 && ic < 3000:
		return PhaseSyntax
	case ic >= 3000 && ic < 4000:
		return PhaseSafety
	case ic >= 4000 && ic < 5000:
		return PhaseIO
	case ic >= 5000 && ic < 6000:
		return PhaseInternal
	}
	return PhaseUnknown
}

func (c Code) ID() string {
	ic := int(c)
	switch c.Phase() {
	case PhaseLex:
		return fmt.Sprintf("LEX%04d", ic)
	case PhaseSyntax:
		return fmt.Sprintf("SYN%04d", ic)
	case PhaseSafety:
		return fmt.Sprintf("SAF%04d", ic)
	case PhaseIO:
		return fmt.Sprintf("IO%04d", ic)
	case PhaseInternal:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
