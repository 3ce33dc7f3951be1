package compare

import (
	"fmt"
	"strings"

	"mamushi/internal/diag"
	"mamushi/internal/parser"
)

// Compare reports whether candidate is a pure relayout of original. A side
// that does not parse makes the result false.
func Compare(original, candidate string) bool {
	return Check([]byte(original), []byte(candidate)) == nil
}

// Check parses both sources and compares their projections. It returns nil
// when they match, a SafetyReparseFailed diagnostic when either side does not
// parse, and a SafetyASTChanged diagnostic naming the first difference
// otherwise.
func Check(original, candidate []byte) error {
	a, err := parser.ParseString("<original>", string(original))
	if err != nil {
		return diag.Newf(diag.SafetyReparseFailed, "", "original does not parse: %v", err)
	}
	b, err := parser.ParseString("<formatted>", string(candidate))
	if err != nil {
		return diag.Newf(diag.SafetyReparseFailed, "", "formatted output does not parse: %v", err)
	}

	ka, kb := Project(a), Project(b)
	if path, ok := firstDiff(ka, kb, nil); ok {
		return diag.Newf(diag.SafetyASTChanged, "", "Formatting changed the AST at %s", path)
	}
	return nil
}

// firstDiff walks both trees in order and describes the first node that
// differs.
func firstDiff(a, b Key, path []string) (string, bool) {
	path = append(path, a.String())
	if a.Kind != b.Kind || a.Value != b.Value {
		return fmt.Sprintf("%s: %s became %s", strings.Join(path[:len(path)-1], " > "), a, b), true
	}
	n := min(len(a.Children), len(b.Children))
	for i := 0; i < n; i++ {
		if where, ok := firstDiff(a.Children[i], b.Children[i], path); ok {
			return where, true
		}
	}
	switch {
	case len(a.Children) > n:
		return fmt.Sprintf("%s: %s was dropped", strings.Join(path, " > "), a.Children[n]), true
	case len(b.Children) > n:
		return fmt.Sprintf("%s: %s was added", strings.Join(path, " > "), b.Children[n]), true
	}
	return "", false
}
