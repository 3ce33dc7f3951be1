package format

import (
	"mamushi/internal/ast"
	"mamushi/internal/parser"
)

// Options configures the printer.
type Options struct {
	// MaxWidth is the target line width; zero means DefaultMaxWidth.
	MaxWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	return o
}

type printer struct {
	opt Options
	w   Writer
}

// Format renders mod in canonical layout. The result for a given tree and
// width is always the same.
func Format(mod *ast.Module, opts Options) []byte {
	p := &printer{opt: opts.withDefaults()}
	p.stmts(0, mod.Body)
	p.trailing(0, mod.Trailing, len(mod.Body) == 0)
	return p.w.Bytes()
}

// Source parses src and formats it. Lexical and syntax errors are returned
// as *diag.Diagnostic.
func Source(path string, src []byte, opts Options) ([]byte, error) {
	mod, err := parser.ParseString(path, string(src))
	if err != nil {
		return nil, err
	}
	return Format(mod, opts), nil
}

// leading writes comments and clamped blank runs that precede a node. Blank
// runs are dropped while first is set, that is until something has been
// written in the current block.
func (p *printer) leading(depth int, ts []ast.Trivia, first bool) {
	for _, t := range ts {
		switch t.Kind {
		case ast.TriviaBlank:
			if !first {
				p.w.Blanks(min(t.Count, MaxBlankLines))
			}
		case ast.TriviaComment:
			p.w.Line(depth, t.Text)
			first = false
		}
	}
}

// trailing writes the trivia after the last statement of a block. Blank runs
// that are not followed by a comment are dropped.
func (p *printer) trailing(depth int, ts []ast.Trivia, first bool) {
	last := -1
	for i, t := range ts {
		if t.IsComment() {
			last = i
		}
	}
	p.leading(depth, ts[:last+1], first)
}

// comments writes own-line comments, dropping blank runs.
func (p *printer) comments(depth int, ts []ast.Trivia) {
	for _, t := range ts {
		if t.IsComment() {
			p.w.Line(depth, t.Text)
		}
	}
}

func (p *printer) stmts(depth int, list []*ast.Stmt) {
	for i, s := range list {
		p.stmt(depth, s, i == 0)
	}
}

func (p *printer) block(depth int, b *ast.Block) {
	if b == nil {
		return
	}
	p.stmts(depth, b.Stmts)
	p.trailing(depth, b.Trailing, len(b.Stmts) == 0)
}
