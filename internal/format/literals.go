package format

import (
	"strings"
)

// normalizeString rewrites a string literal to the canonical prefix case and
// quote character. The decoded value never changes.
func normalizeString(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	prefix, body := strings.ToLower(raw[:i]), raw[i:]
	if len(body) < 2 {
		return prefix + body
	}

	q := body[0]
	n := 1
	if len(body) >= 6 && body[1] == q && body[2] == q {
		n = 3
	}
	if q == Quote || len(body) < 2*n {
		return prefix + body
	}
	inner := body[n : len(body)-n]

	if n == 3 {
		// A quote at either end would merge with the new delimiters.
		if strings.IndexByte(inner, Quote) >= 0 {
			return prefix + body
		}
		d := strings.Repeat(string(rune(Quote)), 3)
		return prefix + d + inner + d
	}

	var b strings.Builder
	b.Grow(len(body))
	b.WriteByte(Quote)
	for j := 0; j < len(inner); j++ {
		c := inner[j]
		switch {
		case c == '\\' && j+1 < len(inner):
			if inner[j+1] == q {
				b.WriteByte(q)
			} else {
				b.WriteByte(c)
				b.WriteByte(inner[j+1])
			}
			j++
		case c == Quote:
			return prefix + body
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(Quote)
	return prefix + b.String()
}

// normalizeNumber lowercases radix prefixes and the exponent marker. Hex
// digits keep their case: checksummed addresses depend on it.
func normalizeNumber(raw string) string {
	if len(raw) > 1 && raw[0] == '0' {
		switch raw[1] {
		case 'X', 'O', 'B':
			return "0" + strings.ToLower(raw[1:2]) + raw[2:]
		case 'x', 'o', 'b':
			return raw
		}
	}
	return strings.ReplaceAll(raw, "E", "e")
}
