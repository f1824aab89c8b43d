package ean

import "regexp"

// Pre-compiled patterns, initialized once and never mutated.
var (
	nonDigitRegex = regexp.MustCompile(`[^0-9]+`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
)

// validWidths are the recognized EAN/GTIN widths: EAN-8, UPC-A, EAN-13, and
// GTIN-14.
var validWidths = map[int]bool{8: true, 12: true, 13: true, 14: true}

// Normalize deletes every character that is not an ASCII digit. Spaces,
// hyphens, and letters are removed entirely rather than replaced; no
// truncation applies, since EAN codes are fixed-width numeric codes. Input
// without any digits yields an empty string.
func Normalize(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Valid reports whether s is all digits with one of the recognized widths
// (8, 12, 13, or 14). The check digit is not verified.
func Valid(s string) bool {
	return validWidths[len(s)] && digitsRegex.MatchString(s)
}
