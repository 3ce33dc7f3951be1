package format

// Layout policy. These are fixed; only the width is configurable.
const (
	// DefaultMaxWidth is the line width used when Options.MaxWidth is zero.
	DefaultMaxWidth = 80
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth = 4
	// MaxBlankLines caps every run of blank lines.
	MaxBlankLines = 2
	// Quote is the preferred string delimiter. A single-quoted string keeps
	// its quotes when the body contains this character unescaped.
	Quote = '"'
	// CommentGap separates code from a comment on the same line.
	CommentGap = "  "
	// TrailingComma adds a separator after the last element of an expanded
	// bracket unless the bracket is a plain parenthesized expression or a
	// subscript with a single index.
	TrailingComma = true
)
