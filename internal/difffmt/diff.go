// Package difffmt renders unified diffs of formatter output.
package difffmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"rsc.io/diff"
)

// Context is the number of unchanged lines shown around a change.
const Context = 3

// timeLayout is the header timestamp layout of difflib-style unified diffs.
const timeLayout = "2006-01-02 15:04:05.000000"

// Line is one line of a line diff. Op is ' ', '-' or '+'.
type Line struct {
	Op   byte
	Text string
}

// Lines computes the line diff turning old into new. rsc.io/diff fills an
// edit-distance table of n*m cells, so lines shared at both ends are matched
// here first and only the changed middle goes through the table.
func Lines(old, new string) []Line {
	if old == new {
		return nil
	}
	a, b := splitLines(old), splitLines(new)
	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] && strings.HasSuffix(a[pre], "\n") {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(b)-pre {
		x := a[len(a)-1-suf]
		if x != b[len(b)-1-suf] || !strings.HasSuffix(x, "\n") {
			break
		}
		suf++
	}

	lines := make([]Line, 0, len(a)+len(b)-pre-suf)
	for _, l := range a[:pre] {
		lines = append(lines, Line{Op: ' ', Text: strings.TrimSuffix(l, "\n")})
	}
	middle := diff.Format(strings.Join(a[pre:len(a)-suf], ""), strings.Join(b[pre:len(b)-suf], ""))
	for _, r := range strings.Split(strings.TrimSuffix(middle, "\n"), "\n") {
		if r == "" {
			continue
		}
		lines = append(lines, Line{Op: r[0], Text: r[1:]})
	}
	for _, l := range a[len(a)-suf:] {
		lines = append(lines, Line{Op: ' ', Text: strings.TrimSuffix(l, "\n")})
	}
	return lines
}

// splitLines splits s after each newline; the last element lacks one only
// when s does not end with a newline.
func splitLines(s string) []string {
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Unified renders a unified diff of one file with STDIN/STDOUT headers. It
// returns "" when the contents are equal.
func Unified(path string, old, new []byte, then, now time.Time) string {
	lines := Lines(string(old), string(new))
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- STDIN\t%s +0000 - %s\n", then.UTC().Format(timeLayout), path)
	fmt.Fprintf(&b, "+++ STDOUT\t%s +0000 - %s\n", now.UTC().Format(timeLayout), path)

	oldAt := make([]int, len(lines))
	newAt := make([]int, len(lines))
	o, n := 1, 1
	for i, l := range lines {
		oldAt[i], newAt[i] = o, n
		if l.Op != '+' {
			o++
		}
		if l.Op != '-' {
			n++
		}
	}

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == ' ' {
			continue
		}
		for j := max(0, i-Context); j <= min(len(lines)-1, i+Context); j++ {
			keep[j] = true
		}
	}

	for start := 0; start < len(lines); {
		if !keep[start] {
			start++
			continue
		}
		end := start
		for end < len(lines) && keep[end] {
			end++
		}
		oldCount, newCount := 0, 0
		for _, l := range lines[start:end] {
			if l.Op != '+' {
				oldCount++
			}
			if l.Op != '-' {
				newCount++
			}
		}
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(oldAt[start], oldCount), hunkRange(newAt[start], newCount))
		for _, l := range lines[start:end] {
			b.WriteByte(l.Op)
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
		start = end
	}
	return b.String()
}

func hunkRange(start, count int) string {
	if count == 0 {
		start--
	}
	return fmt.Sprintf("%d,%d", start, count)
}

var (
	addColor  = color.New(color.FgGreen)
	delColor  = color.New(color.FgRed)
	hunkColor = color.New(color.FgCyan)
	headColor = color.New(color.Bold)
)

// Colorize colors a unified diff. It is a no-op when color output is
// disabled (color.NoColor).
func Colorize(d string) string {
	if color.NoColor || d == "" {
		return d
	}
	var b strings.Builder
	for _, l := range strings.SplitAfter(d, "\n") {
		body := strings.TrimSuffix(l, "\n")
		nl := l[len(body):]
		switch {
		case strings.HasPrefix(body, "+++") || strings.HasPrefix(body, "---"):
			b.WriteString(headColor.Sprint(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(hunkColor.Sprint(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addColor.Sprint(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(delColor.Sprint(body))
		default:
			b.WriteString(body)
		}
		b.WriteString(nl)
	}
	return b.String()
}
