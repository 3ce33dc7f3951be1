package ast

import (
	"mamushi/internal/source"
)

type TriviaKind uint8

const (
	TriviaComment TriviaKind = iota
	TriviaBlank
)

// Trivia is a comment or a run of blank lines.
type Trivia struct {
	Kind  TriviaKind
	Text  string // comment text including '#', right-trimmed
	Count int    // number of blank lines in the run
	Span  source.Span
}

// IsComment reports whether t is a comment.
func (t Trivia) IsComment() bool { return t.Kind == TriviaComment }

// HasComment reports whether any item of ts is a comment.
func HasComment(ts []Trivia) bool {
	for _, t := range ts {
		if t.Kind == TriviaComment {
			return true
		}
	}
	return false
}

// Comments returns only the comments of ts.
func Comments(ts []Trivia) []Trivia {
	var out []Trivia
	for _, t := range ts {
		if t.Kind == TriviaComment {
			out = append(out, t)
		}
	}
	return out
}
