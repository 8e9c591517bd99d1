package analyzer

import (
	"strings"
	"unicode"
)

// Normalize canonicalises text for indexing and querying: every rune
// that is not a word character, whitespace, Thai script, or one of the
// allowed punctuation marks (. , ! ? -) is replaced with a space, then
// whitespace runs collapse to a single space, the result is trimmed and
// lowercased. Replacement (not deletion) keeps adjacent tokens from
// colliding. Empty input yields empty output and the function is
// idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true // trims leading whitespace
	for _, r := range text {
		if isKept(r) {
			b.WriteRune(unicode.ToLower(r))
			lastSpace = false
			continue
		}
		// whitespace and stripped runes both become a single space
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// isKept reports whether a rune survives normalization.
func isKept(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return true
	}
	// The Thai range is allowed explicitly: the normalizer must keep the
	// corpus script even under word-character classes that exclude it.
	if isThai(r) {
		return true
	}
	switch r {
	case '.', ',', '!', '?', '-':
		return true
	}
	return false
}

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

// TruncateRunes cuts s after n runes. Thai text is multi-byte, so all
// length limits in the system count runes rather than bytes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
