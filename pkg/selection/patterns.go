// File: pkg/selection/patterns.go
package selection

import "strings"

// globToRegex converts a gitignore-like pattern body to a regex body.
// "**" spans directories ("**/" at a segment boundary may span zero), "*"
// and "?" stay inside one segment, and every other byte is escaped so an
// odd pattern degrades to a literal string instead of failing to compile.
func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' && i+1 < len(pattern) && pattern[i+1] == '*' {
			if i+2 < len(pattern) && pattern[i+2] == '/' {
				b.WriteString(`(?:.*/)?`)
				i += 2
				continue
			}
			b.WriteString(`.*`)
			i++
			continue
		}

		switch c := pattern[i]; c {
		case '*':
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}
	return b.String()
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
