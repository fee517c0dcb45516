package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics decomposes and strips combining marks.
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t)
}

// RemovePunct strips Unicode punctuation.
func RemovePunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}

// Normalize lowercases a word, strips diacritics and punctuation, and
// recomposes the result. It may return "".
func Normalize(word string) string {
	w := RemoveDiacritics(strings.ToLower(word))
	return norm.NFC.String(RemovePunct(w))
}

// NormalizeTokens normalizes every token and drops the ones left empty.
func NormalizeTokens(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if n := Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
