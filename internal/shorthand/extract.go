package shorthand

import (
	"strings"
	"unicode"
)

// isBoundary reports characters that can never be part of a class string.
func isBoundary(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '"', '\'', '`', '<', '>', '=', '{', '}', '[', ']', ';':
		return true
	}
	return false
}

// Extract splits a blob of source text into candidate class strings. Only
// candidates that parse are returned, in order of first appearance.
func Extract(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, field := range strings.FieldsFunc(text, isBoundary) {
		if seen[field] {
			continue
		}
		seen[field] = true
		if _, err := Parse(field); err != nil {
			continue
		}
		out = append(out, field)
	}

	return out
}
