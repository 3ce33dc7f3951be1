package fuzztests

import (
	"bytes"
	"testing"

	"mamushi/internal/compare"
	"mamushi/internal/format"
	"mamushi/internal/parser"
	"mamushi/internal/source"
)

// FuzzFormat checks that any input the parser accepts is rewritten into an
// equivalent, stable output.
func FuzzFormat(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewFile("fuzz.vy", clampInput(input))
		mod, err := parser.Parse(file)
		if err != nil {
			return
		}
		out := format.Format(mod, format.Options{})
		if err := compare.Check(file.Content, out); err != nil {
			t.Fatalf("rewrite rejected: %v\ninput: %q\noutput: %q", err, truncateForLog(input, 200), truncateForLog(out, 200))
		}
		again, err := format.Source("fuzz.vy", out, format.Options{})
		if err != nil {
			t.Fatalf("output does not parse: %v", err)
		}
		if !bytes.Equal(out, again) {
			t.Fatalf("not idempotent\nfirst:  %q\nsecond: %q", out, again)
		}
	})
}
