package format_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"rsc.io/diff"

	"mamushi/internal/compare"
	"mamushi/internal/format"
)

// corpus returns the golden inputs plus a few hand-written sources.
func corpus(t *testing.T) map[string]string {
	t.Helper()
	out := map[string]string{
		"calls": `x = foo(a, bar(b, c), d)[0].baz(e=1, f=[1, 2, 3], g={"k": v})
y = a if b else c
z = not a and (b or c) and d in e
w: HashMap[address, HashMap[address, uint256]] = empty(HashMap[address, HashMap[address, uint256]])
`,
		"comments": `# head

@external  # entry
# between
def f(
    a: uint256,  # first
    # second
    b: uint256,
) -> uint256:
    x: uint256 = a + (  # sum
        b
    )
    return x
    # tail
# end
`,
		"nesting": `def g():
    for i: uint256 in range(10):
        if i % 2 == 0:
            continue
        elif i > 8: break
        else:
            self.total += i * self.weight[i] ** 2 - self.offset // 3
`,
	}
	files, err := filepath.Glob("testdata/*.vy")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		out[filepath.Base(name)] = string(data)
	}
	return out
}

var widths = []int{20, 40, 80, 120}

func TestIdempotentAndSafe(t *testing.T) {
	for name, src := range corpus(t) {
		for _, w := range widths {
			first := formatString(t, src, w)
			second := formatString(t, first, w)
			if first != second {
				t.Errorf("%s at width %d: not idempotent (-first +second)\n%s", name, w, diff.Format(first, second))
			}
			if err := compare.Check([]byte(src), []byte(first)); err != nil {
				t.Errorf("%s at width %d: %v", name, w, err)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for name, src := range corpus(t) {
		a, err := format.Source(name, []byte(src), format.Options{})
		if err != nil {
			t.Fatal(err)
		}
		b, err := format.Source(name, []byte(src), format.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: two runs differ", name)
		}
	}
}

func TestWidthRespected(t *testing.T) {
	src := "result = compute(alpha, beta, gamma, delta(epsilon, zeta, eta), theta + iota + kappa)\n"
	for _, w := range []int{20, 30, 40, 80} {
		got := formatString(t, src, w)
		for i, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
			if n := runewidth.StringWidth(line); n > w {
				t.Errorf("width %d: line %d is %d columns: %q", w, i+1, n, line)
			}
		}
	}
}

func TestOutputShape(t *testing.T) {
	for name, src := range corpus(t) {
		got := formatString(t, src, 80)
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("%s: output must end with exactly one newline", name)
		}
		if strings.Contains(got, "\n\n\n\n") {
			t.Errorf("%s: more than two consecutive blank lines", name)
		}
		for i, line := range strings.Split(got, "\n") {
			if strings.HasSuffix(line, " ") && !strings.Contains(line, `"""`) {
				t.Errorf("%s: trailing whitespace on line %d: %q", name, i+1, line)
			}
		}
	}
}
