package travel

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatName produces the canonical form of a country name: trimmed, split
// on single spaces, each word with an upper-case first letter and the rest
// lower-cased, rejoined with single spaces.
func FormatName(raw string) string {
	words := strings.Split(strings.ToLower(strings.TrimSpace(raw)), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
