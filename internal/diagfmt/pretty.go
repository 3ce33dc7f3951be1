package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mamushi/internal/diag"
	"mamushi/internal/source"
)

// Pretty writes d in the compiler style:
//
//	path:line:col: error SYN2001: message
//	   3 | x = = 1
//	     |     ^
//
// The excerpt is printed only when d is located and f holds its text.
func Pretty(w io.Writer, d *diag.Diagnostic, f *source.File, opts PrettyOpts) error {
	sevColor := color.New(color.FgRed, color.Bold)
	switch d.Severity {
	case diag.SevWarning:
		sevColor = color.New(color.FgYellow, color.Bold)
	case diag.SevInfo:
		sevColor = color.New(color.FgCyan)
	}
	pathColor := color.New(color.Bold)
	gutter := color.New(color.FgBlue)
	caret := color.New(color.FgGreen, color.Bold)
	for _, c := range []*color.Color{sevColor, pathColor, gutter, caret} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	loc := displayPath(d.Path, opts.PathMode)
	if d.Located() {
		loc = fmt.Sprintf("%s:%d:%d", loc, d.Pos.Line, d.Pos.Col)
	}
	if loc != "" {
		loc = pathColor.Sprint(loc) + ": "
	}
	if _, err := fmt.Fprintf(w, "%s%s %s: %s\n", loc,
		sevColor.Sprint(strings.ToLower(d.Severity.String())), d.Code.ID(), d.Message); err != nil {
		return err
	}
	if !d.Located() || f == nil {
		return nil
	}

	start, end := f.Resolve(d.Primary)
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + uint32(max(opts.Context, 0))
	numWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		if ln > start.Line && text == "" {
			break
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", gutter.Sprintf("%*d |", numWidth, ln), text); err != nil {
			return err
		}
		if ln != start.Line {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", gutter.Sprintf("%*s |", numWidth, ""),
			caret.Sprint(underline(text, start, end))); err != nil {
			return err
		}
	}
	return nil
}

// underline returns the marker line for a span starting on line; spans that
// run past the line end are cut at it. Columns are byte offsets.
func underline(line string, start, end source.LineCol) string {
	from := min(max(int(start.Col), 1)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col)-1, from), len(line))
	}
	pad := 0
	for _, r := range line[:from] {
		if r == '\t' {
			pad += 4 - pad%4
			continue
		}
		pad += runewidth.RuneWidth(r)
	}
	n := max(runewidth.StringWidth(line[from:to]), 1)
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", n-1)
}
