package parser

import (
	"strings"

	"mamushi/internal/ast"
	"mamushi/internal/token"
)

// takeLead claims the trivia tokens in front of the next token.
func (p *Parser) takeLead() []token.Token {
	it := p.peekN(0)
	lead := it.lead
	it.lead = nil
	return lead
}

// pushLead puts trivia back in front of the next token.
func (p *Parser) pushLead(lead []token.Token) {
	if len(lead) == 0 {
		return
	}
	it := p.peekN(0)
	it.lead = append(append([]token.Token(nil), lead...), it.lead...)
}

func (p *Parser) takeStray() []ast.Trivia {
	s := p.stray
	p.stray = nil
	return s
}

// trivia converts comment and blank tokens; consecutive blanks become one run.
func (p *Parser) trivia(toks []token.Token) []ast.Trivia {
	var out []ast.Trivia
	for _, tok := range toks {
		switch tok.Kind {
		case token.Comment:
			out = append(out, ast.Trivia{
				Kind: ast.TriviaComment,
				Text: strings.TrimRight(tok.Text, " \t\f\r"),
				Span: tok.Span,
			})
		case token.Blank:
			if n := len(out); n > 0 && out[n-1].Kind == ast.TriviaBlank {
				out[n-1].Count++
				out[n-1].Span = out[n-1].Span.Cover(tok.Span)
				continue
			}
			out = append(out, ast.Trivia{Kind: ast.TriviaBlank, Count: 1, Span: tok.Span})
		}
	}
	return out
}

// splitSameLine separates the comments that continue the previous line
// from the rest of lead.
func splitSameLine(lead []token.Token) (same, rest []token.Token) {
	i := 0
	for i < len(lead) && lead[i].Kind == token.Comment && !lead[i].OwnLine {
		i++
	}
	return lead[:i], lead[i:]
}

// column returns the 0-based column of offset off.
func (p *Parser) column(off uint32) uint32 {
	return p.file.Position(off).Col - 1
}

// splitBlockEnd divides the trivia found before a DEDENT: comments indented
// at least to col stay with the closing block, the rest (including blank
// lines after the last such comment) belongs to the outer level.
func (p *Parser) splitBlockEnd(lead []token.Token, col uint32) (inner, outer []token.Token) {
	cut := len(lead)
	for i, tok := range lead {
		if tok.Kind == token.Comment && p.column(tok.Span.Start) < col {
			cut = i
			break
		}
	}
	end := 0
	for i := range cut {
		if lead[i].Kind == token.Comment {
			end = i + 1
		}
	}
	return lead[:end], lead[end:]
}
