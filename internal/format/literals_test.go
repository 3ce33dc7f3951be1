package format

import "testing"

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"abc"`, `"abc"`},
		{`'abc'`, `"abc"`},
		{`'it\'s'`, `"it's"`},
		{`'say "hi"'`, `'say "hi"'`},
		{`'a\"b'`, `"a\"b"`},
		{`'a\\'`, `"a\\"`},
		{`''`, `""`},
		{`B'\x01'`, `b"\x01"`},
		{`X"DEADbeef"`, `x"DEADbeef"`},
		{`'''doc'''`, `"""doc"""`},
		{`'''say "hi"'''`, `'''say "hi"'''`},
		{`"""already"""`, `"""already"""`},
	}
	for _, tt := range tests {
		if got := normalizeString(tt.in); got != tt.want {
			t.Errorf("normalizeString(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0XFF", "0xFF"},
		{"0xdeadBEEF", "0xdeadBEEF"},
		{"0B1010", "0b1010"},
		{"0O17", "0o17"},
		{"1E18", "1e18"},
		{"1_000", "1_000"},
		{"3.14", "3.14"},
		{"0", "0"},
	}
	for _, tt := range tests {
		if got := normalizeNumber(tt.in); got != tt.want {
			t.Errorf("normalizeNumber(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWriterClampsBlankRuns(t *testing.T) {
	var w Writer
	w.Blanks(3)
	w.Line(0, "x = 1")
	w.Blanks(5)
	w.Line(1, "y")
	w.Blanks(1)
	got := string(w.Bytes())
	want := "x = 1\n\n\n    y\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
