package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFold decomposes characters and strips combining marks, so
// "séquence" sanitizes to "sequence".
var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeComponent makes a metadata value safe to embed in a file
// name: trims it, folds diacritics, and collapses separators,
// whitespace, and any other unsafe runs into single hyphens.
func SanitizeComponent(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	folded, _, err := transform.String(diacriticFold, trimmed)
	if err != nil {
		folded = trimmed
	}

	var sb strings.Builder
	sb.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return strings.Trim(sb.String(), "-")
}
