package idx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/pimkit/pkg/slug"
)

const (
	// DefaultMaxLength bounds normalized and validated identifiers.
	DefaultMaxLength = 128
	// DefaultMinLength is the minimum accepted identifier length.
	DefaultMinLength = 1
)

// charsetRegex is the identifier alphabet; edge separators are checked
// separately so failures report which rule broke.
var charsetRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Option configures Normalize and Validate. MinLength is only consulted by
// Validate; Normalize has no lower bound beyond rejecting empty results.
type Option func(*config)

type config struct {
	minLength int
	maxLength int
}

func defaultConfig() *config {
	return &config{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}
}

// MaxLength overrides the default maximum length of 128.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// MinLength overrides the default minimum length of 1. Only Validate uses it.
func MinLength(n int) Option {
	return func(c *config) {
		c.minLength = n
	}
}

// Normalize converts free-form text into a canonical identifier: a slug
// restricted to [a-z0-9-], bounded to the configured maximum length with a
// fingerprint suffix when truncation occurs.
//
// It returns ErrInvalidArgument when the configured maximum length is not
// positive, and ErrInvalidInput when the text slugifies to nothing. An empty
// string is never returned as a success value.
func Normalize(text string, opts ...Option) (string, error) {
	cfg := defaultConfig()
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

	return slug.Truncate(s, cfg.maxLength), nil
}

// Validate checks that s already has the canonical identifier shape: only
// [a-z0-9_-], no leading or trailing separator, length within the configured
// bounds. It never normalizes; callers wanting a canonical form use Normalize.
//
// Malformed bounds (negative, or min greater than max) return
// ErrInvalidArgument. Every content failure wraps ErrInvalidIdentifier.
func Validate(s string, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.minLength < 0 || cfg.maxLength < 0 || cfg.minLength > cfg.maxLength {
		return fmt.Errorf("%w: bounds min=%d max=%d", ErrInvalidArgument, cfg.minLength, cfg.maxLength)
	}

	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidIdentifier)
	}
	if len(s) < cfg.minLength {
		return fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidIdentifier, s, cfg.minLength)
	}
	if len(s) > cfg.maxLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidIdentifier, s, cfg.maxLength)
	}
	if !charsetRegex.MatchString(s) {
		return fmt.Errorf("%w: %q contains characters outside [a-z0-9_-]", ErrInvalidIdentifier, s)
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "_") {
		return fmt.Errorf("%w: %q starts with a separator", ErrInvalidIdentifier, s)
	}
	if strings.HasSuffix(s, "-") || strings.HasSuffix(s, "_") {
		return fmt.Errorf("%w: %q ends with a separator", ErrInvalidIdentifier, s)
	}

	return nil
}
