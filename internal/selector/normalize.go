package selector

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces punctuation with spaces, and
// collapses whitespace runs to single spaces. It is idempotent, so
// normalized text can be compared against already-normalized text safely.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			// punctuation and symbols become word boundaries, so
			// "your-self" never collapses into a new token
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsEither reports substring containment in either direction over
// already-normalized text. Empty strings never match anything.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
