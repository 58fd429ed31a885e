package token

import (
	"strings"
)

// NeedsQuote reports whether v must be emitted as a quoted string.
// Barewords may not be empty and may not contain whitespace, parens,
// quotes or backslashes.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	return strings.ContainsAny(v, " \t\r\n()\"\\")
}

// Quote renders v as a double-quoted string, escaping backslashes and
// embedded quotes the way the KiCad writer does.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\t':
			d = append(d, '\\', 't')
		case '\r':
			d = append(d, '\\', 'r')
		default:
			d = append(d, v[i])
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuotedToString removes the surrounding quotes and unescapes the raw
// bytes of a TString token.
func QuotedToString(d []byte) string {
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		d = d[1 : len(d)-1]
	}
	var sb strings.Builder
	sb.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c == '\\' && i+1 < len(d) {
			i++
			switch d[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(d[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
