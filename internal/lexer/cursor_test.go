package lexer

import (
	"testing"

	"mamushi/internal/source"
)

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(source.NewVirtualFile("t.vy", "a\nb"))
	for _, want := range []byte("a\nb") {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump: want %q, got %q", want, got)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("cursor should be exhausted")
	}
}

func TestCursorMarkResetEat(t *testing.T) {
	c := NewCursor(source.NewVirtualFile("t.vy", "abc"))
	m := c.Mark()
	if !c.Eat('a') || c.Eat('z') {
		t.Fatal("Eat mismatch")
	}
	c.Bump()
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom: %v", sp)
	}
	if c.PeekAt(0) != 'c' || c.PeekAt(1) != 0 {
		t.Fatal("PeekAt mismatch")
	}
	c.Reset(m)
	if c.Peek() != 'a' {
		t.Fatal("Reset did not rewind")
	}
}
