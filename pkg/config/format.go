package config

import (
	"fmt"
	"strconv"
	"strings"
)

// formatTemplate substitutes positional placeholders ({0}, {1}, ...) in tmpl
// with the corresponding args. Braces are escaped by doubling them.
func formatTemplate(tmpl string, args ...string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unclosed placeholder at position %d in %q", i, tmpl)
			}
			idx, err := strconv.Atoi(strings.TrimSpace(tmpl[i+1 : i+end]))
			if err != nil || idx < 0 {
				return "", fmt.Errorf("bad placeholder %q in %q", tmpl[i:i+end+1], tmpl)
			}
			if idx >= len(args) {
				return "", fmt.Errorf("placeholder {%d} in %q has no argument", idx, tmpl)
			}
			b.WriteString(args[idx])
			i += end
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("unexpected '}' at position %d in %q", i, tmpl)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
