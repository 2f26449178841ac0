package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeText canonicalizes free-text answers for comparison: lower
// case, diacritics stripped, punctuation folded to spaces, whitespace
// collapsed and trimmed.
func NormalizeText(input string) string {
	lowered := strings.ToLower(input)

	stripped, _, err := transform.String(diacriticsStripper, lowered)
	if err != nil {
		stripped = lowered
	}

	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// NormalizeTokens normalizes a text and splits it into its tokens,
// dropping empty results.
func NormalizeTokens(input string) []string {
	normalized := NormalizeText(input)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
