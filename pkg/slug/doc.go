// Package slug converts free-form text into lowercase ASCII slugs and bounds
// their length deterministically.
//
// The package is the shared leaf machinery for the identifier, SKU, and URL
// key normalizers: Make produces the canonical [a-z0-9-] form of arbitrary
// Unicode input, and Truncate enforces a maximum length without losing the
// ability to tell long inputs apart.
//
// # Slugification
//
// Make transliterates Unicode to ASCII (NFD decomposition with combining-mark
// removal, plus an explicit fold table for letters like "ł" and "ø" that do
// not decompose), lowercases the result, collapses every run of remaining
// non-alphanumeric characters to a single hyphen, and trims leading and
// trailing hyphens:
//
//	slug.Make("Premium Coffee Beans - Ethiopian Origin!")
//	// "premium-coffee-beans-ethiopian-origin"
//
//	slug.Make("Żółć & Co.")
//	// "zolc-co"
//
// # Truncation
//
// Truncate returns slugs that fit unchanged. A slug longer than maxLen is cut
// to maxLen-9 characters and suffixed with a separator plus the first 8 hex
// characters of the SHA-256 digest of the full original slug:
//
//	slug.Truncate(strings.Repeat("a", 200), 50)
//	// 50 characters ending in "_" plus 8 hex characters
//
// Because the fingerprint covers the whole input rather than the surviving
// prefix, two different long slugs that agree within the truncation window
// still produce different results. The digest choice is about stable, well
// distributed output, not secrecy.
//
// # Thread Safety
//
// Both functions are pure. Package state is limited to the fold table and the
// transliteration transform, built once and never mutated, so all functions
// are safe for unsynchronized concurrent use.
package slug
