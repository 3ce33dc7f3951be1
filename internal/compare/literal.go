package compare

import (
	"strings"
)

// numberValue lowercases the markers of a numeric literal. Hex digits keep
// their case.
func numberValue(raw string) string {
	if len(raw) > 1 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		return "0x" + raw[2:]
	}
	return strings.ToLower(raw)
}

// stringValue returns the prefix class and the body of a string literal with
// quote escapes resolved, so that the choice of delimiter does not matter.
// Other escapes are kept as written.
func stringValue(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	prefix, body := strings.ToLower(raw[:i]), raw[i:]
	n := 1
	if len(body) >= 6 && body[1] == body[0] && body[2] == body[0] {
		n = 3
	}
	if len(body) < 2*n {
		return prefix + ":" + body
	}
	inner := body[n : len(body)-n]

	var b strings.Builder
	b.Grow(len(prefix) + 1 + len(inner))
	b.WriteString(prefix)
	b.WriteByte(':')
	for j := 0; j < len(inner); j++ {
		c := inner[j]
		if c == '\\' && j+1 < len(inner) {
			if next := inner[j+1]; next == '"' || next == '\'' {
				b.WriteByte(next)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			j++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
