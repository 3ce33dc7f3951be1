package source

import (
	"testing"
)

func TestPosition(t *testing.T) {
	f := NewVirtualFile("a.vy", "ab\ncd\n\nef")
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	f := NewVirtualFile("a.vy", "first\nsecond\n\nlast")
	for i, want := range []string{"first", "second", "", "last", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}

func TestNewFileNormalizes(t *testing.T) {
	f := NewFile("x.vy", []byte("\xEF\xBB\xBFa\r\nb\rc\r\n"))
	if got, want := string(f.Content), "a\nb\rc\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if len(f.LineIdx) != 2 {
		t.Fatalf("line index = %v, want two entries", f.LineIdx)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 5}
	if got, want := a.Cover(b), (Span{Start: 2, End: 8}); got != want {
		t.Fatalf("Cover = %v, want %v", got, want)
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Fatal("zero-length span should be empty")
	}
}

func TestText(t *testing.T) {
	f := NewVirtualFile("a.vy", "hello world")
	if got := f.Text(Span{Start: 6, End: 11}); got != "world" {
		t.Fatalf("Text = %q", got)
	}
	if got := f.Text(Span{Start: 6, End: 99}); got != "world" {
		t.Fatalf("Text past end = %q", got)
	}
}
