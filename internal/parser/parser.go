package parser

import (
	"fmt"

	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/lexer"
	"mamushi/internal/source"
	"mamushi/internal/token"
)

// item is a significant token together with the trivia tokens that precede it.
type item struct {
	tok  token.Token
	lead []token.Token
}

// Parser holds the state of one parse call.
type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	buf  []item      // lookahead
	last token.Token // last consumed token

	// stray collects trivia met in the middle of a construct; the nearest
	// enclosing bracket element or statement adopts it.
	stray []ast.Trivia
	err   *diag.Diagnostic
}

// Parse parses a whole file. On failure the error is a *diag.Diagnostic
// located at the offending token and no tree is returned.
func Parse(file *source.File) (*ast.Module, error) {
	p := &Parser{file: file, lx: lexer.New(file)}
	mod := p.parseModule()
	if p.err != nil {
		return nil, p.err
	}
	return mod, nil
}

// ParseString parses in-memory text.
func ParseString(path, text string) (*ast.Module, error) {
	return Parse(source.NewVirtualFile(path, text))
}

func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{Path: p.file.Path}
	for p.err == nil {
		if p.at(token.EOF) {
			mod.Trailing = append(p.takeStray(), p.trivia(p.takeLead())...)
			break
		}
		stmts, ok := p.parseStatement()
		if !ok {
			return nil
		}
		mod.Body = append(mod.Body, stmts...)
	}
	if p.err != nil {
		return nil
	}
	mod.Span = source.Span{Start: 0, End: p.file.Len()}
	return mod
}

// peekN returns the n-th significant token ahead without consuming it.
func (p *Parser) peekN(n int) *item {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.read())
	}
	return &p.buf[n]
}

func (p *Parser) peek() token.Token {
	return p.peekN(0).tok
}

// read pulls the next significant token from the lexer, gathering the
// comment and blank tokens in front of it.
func (p *Parser) read() item {
	var it item
	for {
		tok, err := p.lx.Next()
		if err != nil {
			if p.err == nil {
				if d, ok := diag.As(err); ok {
					p.err = d
				} else {
					p.err = diag.Newf(diag.SynUnexpectedToken, p.file.Path, "%v", err)
				}
			}
			it.tok = token.Token{Kind: token.EOF, Span: tok.Span}
			return it
		}
		if tok.IsTrivia() {
			it.lead = append(it.lead, tok)
			continue
		}
		it.tok = tok
		return it
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// atSoft reports whether the next token is the identifier word.
func (p *Parser) atSoft(word string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == word
}

// advance consumes the next token. Its unclaimed leading trivia becomes stray.
func (p *Parser) advance() token.Token {
	it := p.peekN(0)
	if len(it.lead) > 0 {
		p.stray = append(p.stray, p.trivia(it.lead)...)
		it.lead = nil
	}
	tok := it.tok
	if tok.Kind != token.EOF {
		p.buf = p.buf[1:]
		p.last = tok
	}
	return tok
}

// expect consumes a token of kind k or records a syntax error.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorHere(code, msg)
	return token.Token{Kind: token.Invalid, Span: p.peek().Span}, false
}

// errorHere records the first syntax error at the next token.
func (p *Parser) errorHere(code diag.Code, msg string) {
	p.errorAt(code, p.peek().Span, msg)
}

func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) {
	if p.err != nil {
		return
	}
	p.err = diag.At(p.file, code, sp, msg)
}

func (p *Parser) unexpected() {
	tok := p.peek()
	switch tok.Kind {
	case token.EOF:
		p.errorHere(diag.SynUnexpectedToken, "unexpected end of file")
	case token.Newline:
		p.errorHere(diag.SynUnexpectedToken, "invalid syntax: unexpected end of line")
	case token.Indent:
		p.errorHere(diag.SynUnexpectedToken, "unexpected indent")
	case token.Dedent:
		p.errorHere(diag.SynUnexpectedToken, "unexpected dedent")
	default:
		p.errorHere(diag.SynUnexpectedToken, fmt.Sprintf("invalid syntax: unexpected '%s'", tok.Text))
	}
}

// spanFrom covers start up to the end of the last consumed token.
func (p *Parser) spanFrom(start uint32) source.Span {
	end := p.last.Span.End
	if end < start {
		end = start
	}
	return source.Span{Start: start, End: end}
}
