package lexer

import (
	"fmt"

	"mamushi/internal/diag"
	"mamushi/internal/source"
	"mamushi/internal/token"
)

// tabSize is the column multiple a tab advances indentation to.
const tabSize = 8

type openBracket struct {
	kind token.Kind
	span source.Span
}

// Lexer turns a file into a lazy stream of tokens.
// The stream is finite and can be consumed only once.
type Lexer struct {
	file   *source.File
	cursor Cursor

	indents  []uint32      // indentation stack, bottom is always 0
	brackets []openBracket // open (, [, {
	queue    []token.Token // tokens produced but not yet returned

	atLineStart bool
	lineHasCode bool       // a significant token was emitted on the current logical line
	lastCode    token.Kind // last significant token kind, trivia excluded
	done        bool       // EOF has been queued
	err         error      // sticky lexical error
}

// New creates a lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		indents:     []uint32{0},
		atLineStart: true,
		lastCode:    token.Invalid,
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
// Once an error has been returned, every later call returns it too.
func (lx *Lexer) Next() (token.Token, error) {
	for len(lx.queue) == 0 {
		if lx.err != nil {
			return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}, lx.err
		}
		if lx.done {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
		}
		lx.fill()
	}
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok, nil
}

// Tokenize drains a fresh lexer over file, EOF included.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (lx *Lexer) emit(tok token.Token) {
	switch tok.Kind {
	case token.Comment, token.Blank:
	case token.Newline:
		lx.lineHasCode = false
	case token.Indent, token.Dedent:
	default:
		lx.lineHasCode = true
		lx.lastCode = tok.Kind
	}
	lx.queue = append(lx.queue, tok)
}

func (lx *Lexer) fail(code diag.Code, span source.Span, format string, args ...any) {
	lx.err = diag.At(lx.file, code, span, fmt.Sprintf(format, args...))
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

// fill queues at least one token or sets lx.err.
func (lx *Lexer) fill() {
	if lx.atLineStart && len(lx.brackets) == 0 {
		if lx.lineStart() {
			return
		}
	}
	for {
		lx.skipSpaces()
		if lx.cursor.EOF() {
			lx.finish()
			return
		}
		switch ch := lx.cursor.Peek(); {
		case ch == '\n':
			if len(lx.brackets) > 0 {
				lx.cursor.Bump()
				continue
			}
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.emit(token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(m), Text: "\n"})
			lx.atLineStart = true
			return
		case ch == '#':
			lx.emit(lx.scanComment(lx.onlySpaceBefore(lx.cursor.Off)))
			return
		case ch == '\\':
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			if !lx.cursor.Eat('\n') {
				lx.fail(diag.LexBadContinuation, lx.cursor.SpanFrom(m), "unexpected character after line continuation character")
				return
			}
			continue
		default:
			tok, ok := lx.scanToken()
			if ok {
				lx.emit(tok)
			}
			return
		}
	}
}

// lineStart measures indentation at the beginning of a physical line.
// It returns true when it produced trivia or indentation tokens (or failed).
func (lx *Lexer) lineStart() bool {
	m := lx.cursor.Mark()
	col := lx.measureIndent()
	switch {
	case lx.cursor.EOF():
		lx.atLineStart = false
		return false
	case lx.cursor.Peek() == '\n':
		lx.cursor.Bump()
		lx.emit(token.Token{Kind: token.Blank, Span: lx.cursor.SpanFrom(m), Text: lx.file.Text(lx.cursor.SpanFrom(m))})
		return true
	case lx.cursor.Peek() == '#':
		lx.emit(lx.scanComment(true))
		lx.cursor.Eat('\n')
		return true
	case lx.cursor.Peek() == '\\' && lx.cursor.PeekAt(1) == '\n':
		// a continuation right after indentation joins this line to the next
		lx.atLineStart = false
		return false
	}

	lx.atLineStart = false
	top := lx.indents[len(lx.indents)-1]
	span := lx.emptySpan()
	switch {
	case col > top:
		if lx.lastCode != token.Colon {
			lx.fail(diag.LexUnexpectedIndent, span, "unexpected indent")
			return true
		}
		lx.indents = append(lx.indents, col)
		lx.emit(token.Token{Kind: token.Indent, Span: span})
		return true
	case col < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > col {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.emit(token.Token{Kind: token.Dedent, Span: span})
		}
		if lx.indents[len(lx.indents)-1] != col {
			lx.queue = lx.queue[:0]
			lx.fail(diag.LexInconsistentDedent, span, "unindent does not match any outer indentation level")
		}
		return true
	}
	return false
}

func (lx *Lexer) measureIndent() uint32 {
	var col uint32
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ':
			col++
		case '\t':
			col = (col/tabSize + 1) * tabSize
		case '\f':
			col = 0
		default:
			return col
		}
		lx.cursor.Bump()
	}
	return col
}

func (lx *Lexer) skipSpaces() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// finish closes the stream: pending NEWLINE, one DEDENT per open level, EOF.
func (lx *Lexer) finish() {
	if n := len(lx.brackets); n > 0 {
		open := lx.brackets[n-1]
		lx.fail(diag.LexUnclosedBracket, open.span, "'%s' was never closed", open.kind)
		return
	}
	span := lx.emptySpan()
	if lx.lineHasCode {
		lx.emit(token.Token{Kind: token.Newline, Span: span})
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.Token{Kind: token.Dedent, Span: span})
	}
	lx.emit(token.Token{Kind: token.EOF, Span: span})
	lx.done = true
}

// onlySpaceBefore reports whether only indentation precedes off on its line.
func (lx *Lexer) onlySpaceBefore(off uint32) bool {
	for i := int(off) - 1; i >= 0; i-- {
		switch lx.file.Content[i] {
		case '\n':
			return true
		case ' ', '\t', '\f':
		default:
			return false
		}
	}
	return true
}

func (lx *Lexer) scanComment(ownLine bool) token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.file.Text(sp), OwnLine: ownLine}
}

// scanToken scans one significant token starting at the cursor.
func (lx *Lexer) scanToken() (token.Token, bool) {
	ch := lx.cursor.Peek()
	switch {
	case ch == '"' || ch == '\'':
		return lx.scanString(lx.cursor.Mark())
	case isIdentStartByte(ch) || ch >= 0x80:
		return lx.scanIdentOrKeyword()
	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}
