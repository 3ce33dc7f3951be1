package format

import (
	"bytes"
	"strings"

	"mamushi/internal/ast"
)

// line is one output line before indentation is applied. A blank line has
// depth -1.
type line struct {
	depth int
	text  string
}

// Writer collects output lines. Indentation is applied by Bytes, so a line
// can be popped and continued while the printer is still deciding its
// shape.
type Writer struct {
	lines []line
}

// Line appends a line at the given nesting depth.
func (w *Writer) Line(depth int, text string) {
	w.lines = append(w.lines, line{depth: depth, text: text})
}

// Blanks appends n blank lines.
func (w *Writer) Blanks(n int) {
	for ; n > 0; n-- {
		w.lines = append(w.lines, line{depth: -1})
	}
}

// Pop removes the last line and returns it so the caller can continue it.
func (w *Writer) Pop() (depth int, text string) {
	last := w.lines[len(w.lines)-1]
	w.lines = w.lines[:len(w.lines)-1]
	return last.depth, last.text
}

// Depth returns the depth of the last line.
func (w *Writer) Depth() int {
	if len(w.lines) == 0 {
		return 0
	}
	return w.lines[len(w.lines)-1].depth
}

// Comments appends comments to the end of the last line.
func (w *Writer) Comments(ts []ast.Trivia) {
	if len(w.lines) == 0 {
		return
	}
	last := &w.lines[len(w.lines)-1]
	for _, t := range ts {
		if t.IsComment() {
			last.text += CommentGap + t.Text
		}
	}
}

// Len reports the number of lines written so far.
func (w *Writer) Len() int { return len(w.lines) }

// Bytes renders the collected lines. Blank lines at the start and the end
// are dropped, interior runs are clamped to MaxBlankLines, and a non-empty
// result ends with exactly one newline.
func (w *Writer) Bytes() []byte {
	lines := w.lines
	for len(lines) > 0 && lines[0].depth < 0 {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1].depth < 0 {
		lines = lines[:len(lines)-1]
	}

	var buf bytes.Buffer
	blanks := 0
	for _, l := range lines {
		if l.depth < 0 {
			blanks++
			if blanks <= MaxBlankLines {
				buf.WriteByte('\n')
			}
			continue
		}
		blanks = 0
		buf.WriteString(strings.Repeat(" ", l.depth*IndentWidth))
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
