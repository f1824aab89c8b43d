package sku

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/pimkit/pkg/slug"
)

// DefaultMaxLength bounds normalized and validated SKUs. It matches the
// generic identifier default; override per call with MaxLength.
const DefaultMaxLength = 128

// validRegex accepts mixed case on input; the canonical form produced by
// Normalize is lowercase.
var validRegex = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Option configures Normalize.
type Option func(*config)

type config struct {
	maxLength int
}

// MaxLength overrides the default maximum length of 128.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Normalize converts free-form text into a canonical SKU: a slug restricted
// to [a-z0-9-] with spaces and punctuation collapsed to single hyphens.
// Unlike generic identifiers, SKUs never contain underscores, so truncation
// of long inputs uses a hyphen before the fingerprint suffix.
//
// Returns ErrInvalidArgument for a non-positive maximum length and
// ErrInvalidInput when the text slugifies to nothing.
func Normalize(text string, opts ...Option) (string, error) {
	cfg := &config{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxLength <= 0 {
		return "", fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidArgument, cfg.maxLength)
	}

	s := slug.Make(text)
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}

	return slug.Truncate(s, cfg.maxLength, slug.TruncateSeparator("-")), nil
}

// Valid reports whether s is an acceptable SKU: non-empty, at most 128
// characters, and containing only letters, digits, and hyphens. Mixed case is
// accepted here even though Normalize always emits lowercase.
//
// Unlike idx.Validate, ordinary invalid content never produces an error; the
// answer is simply false.
func Valid(s string) bool {
	if s == "" || len(s) > DefaultMaxLength {
		return false
	}
	return validRegex.MatchString(s)
}
