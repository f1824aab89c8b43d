package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes Unicode text (NFD) and removes combining marks, so
// "café" becomes "cafe" before slugification.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldMap covers Latin letters that NFD decomposition cannot reduce to ASCII.
var foldMap = map[rune]rune{
	'ł': 'l', 'Ł': 'l',
	'ø': 'o', 'Ø': 'o',
	'đ': 'd', 'Đ': 'd',
	'ð': 'd', 'Ð': 'd',
	'þ': 't', 'Þ': 't',
	'æ': 'a', 'Æ': 'a',
	'œ': 'o', 'Œ': 'o',
	'ß': 's',
}

// Make converts arbitrary Unicode text into a lowercase ASCII slug containing
// only [a-z0-9-]. Diacritics are transliterated to their closest ASCII
// equivalents, each maximal run of remaining non-alphanumeric characters
// collapses to a single hyphen, and leading/trailing hyphens are stripped.
// Empty input yields an empty string.
//
// Make is deterministic and has no failure mode.
func Make(s string) string {
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // true at start so no leading hyphen is written
	for _, r := range s {
		r = unicode.ToLower(r)

		if mapped, ok := foldMap[r]; ok {
			r = mapped
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}

		if !lastWasSep {
			b.WriteByte('-')
			lastWasSep = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
