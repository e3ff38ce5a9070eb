package certificate

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKeyword lowercases, strips diacritics and trims a keyword so
// "Educação" and "educacao" compare equal.
func NormalizeKeyword(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	decomposed := norm.NFD.String(lower)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// MatchCount counts how many provided keywords appear in the official set
// after normalization. Duplicates each count on their own.
func MatchCount(provided, official []string) int {
	officialSet := make(map[string]struct{}, len(official))
	for _, k := range official {
		n := NormalizeKeyword(k)
		if n == "" {
			continue
		}
		officialSet[n] = struct{}{}
	}
	matched := 0
	for _, k := range provided {
		n := NormalizeKeyword(k)
		if n == "" {
			continue
		}
		if _, ok := officialSet[n]; ok {
			matched++
		}
	}
	return matched
}
