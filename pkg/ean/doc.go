// Package ean normalizes and validates European Article Number codes.
//
// EAN codes are fixed-width numeric codes, so the package is a pure digit
// filter plus a width check; none of the slug/truncation machinery the
// other normalizers share applies here.
//
// # Usage
//
//	import "github.com/dmitrymomot/pimkit/pkg/ean"
//
//	ean.Normalize("123 456 789 012") // "123456789012"
//	ean.Valid("123456789012")        // true  (UPC-A width)
//	ean.Valid("12345")               // false (unrecognized width)
//
// Recognized widths are 8 (EAN-8), 12 (UPC-A), 13 (EAN-13), and 14 (GTIN-14).
//
// # Limitation
//
// Valid does not verify the check digit; a code with a correct width and a
// wrong checksum still passes. Callers needing checksum verification must do
// it themselves.
package ean
