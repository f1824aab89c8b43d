// Package sku normalizes and validates Stock Keeping Unit codes.
//
// A canonical SKU is a lowercase slug restricted to [a-z0-9-]: no
// underscores, spaces and punctuation collapsed to single hyphens. Long
// inputs truncate with a hyphen-separated fingerprint suffix, keeping the
// result inside the SKU alphabet.
//
// # Usage
//
//	import "github.com/dmitrymomot/pimkit/pkg/sku"
//
//	code, err := sku.Normalize("COFFEE-123-ABC DEF")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// code == "coffee-123-abc-def"
//
//	sku.Valid("COFFEE-123")  // true (mixed case accepted on input)
//	sku.Valid("coffee,123")  // false
//	sku.Valid("")            // false
//
// Valid is boolean by contract: ordinary invalid content returns false, never
// an error. This deliberately differs from idx.Validate, which reports every
// failure through a wrapped error; callers depend on both conventions.
package sku
