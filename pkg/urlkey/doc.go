// Package urlkey normalizes and validates slugs intended for web path
// segments.
//
// A URL key is the hyphen-only variant of the generic identifier: lowercase
// ASCII restricted to [a-z0-9-], no edge hyphens, bounded to 128 characters.
// Long inputs keep the deterministic fingerprint-suffix truncation so two
// different long titles never collapse to the same key.
//
// # Usage
//
//	import "github.com/dmitrymomot/pimkit/pkg/urlkey"
//
//	key, err := urlkey.Normalize("Premium Coffee & Tea Products")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// key == "premium-coffee-tea-products"
//
//	urlkey.Valid("premium-coffee-tea-products") // true
//	urlkey.Valid("premium_coffee")              // false (underscore)
//	urlkey.Valid("-premium")                    // false (edge hyphen)
//
// Valid is boolean by contract, mirroring idx.Validate's rules minus
// underscores; content failures return false rather than an error.
package urlkey
