// Package idx normalizes free-form text into canonical catalog identifiers
// and validates strings against the identifier shape.
//
// An identifier (idx) is the generic database/URL key form: lowercase ASCII
// restricted to [a-z0-9_-], never starting or ending with a separator, and
// bounded in length (1 to 128 characters by default). Normalization is
// deterministic (identical input always yields an identical identifier)
// and long inputs are truncated with a fingerprint suffix so distinct
// sources stay distinct.
//
// # Usage
//
//	import "github.com/dmitrymomot/pimkit/pkg/idx"
//
//	id, err := idx.Normalize("Premium Coffee Beans - Ethiopian Origin!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// id == "premium-coffee-beans-ethiopian-origin"
//
//	if err := idx.Validate(id); err != nil {
//	    log.Fatal(err)
//	}
//
// Bounds are per-call functional options:
//
//	id, err := idx.Normalize(longTitle, idx.MaxLength(50))
//	err = idx.Validate(id, idx.MinLength(3), idx.MaxLength(50))
//
// # Error contract
//
// Unlike the boolean validators in the sku, ean, and urlkey packages, both
// functions here report through errors: ErrInvalidArgument for malformed
// bounds, ErrInvalidInput when text slugifies to nothing, and wrapped
// ErrInvalidIdentifier for every validation failure. Normalize and Validate
// never call each other; they share only the identifier alphabet.
package idx
