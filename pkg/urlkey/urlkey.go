package urlkey

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/pimkit/pkg/slug"
)

// DefaultMaxLength bounds normalized and validated URL keys.
const DefaultMaxLength = 128

var charsetRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

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

// Normalize converts free-form text into a URL key: a slug restricted to
// [a-z0-9-], suitable for use as a web path segment. Long inputs truncate
// with a hyphen-separated fingerprint suffix, the same collision-avoidance
// behavior as generic identifiers but without underscores.
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

// Valid reports whether s is an acceptable URL key: non-empty, at most 128
// characters, only [a-z0-9-], and not starting or ending with a hyphen. The
// rules mirror idx.Validate with underscores rejected, but the contract is
// boolean: invalid content returns false, never an error.
func Valid(s string) bool {
	if s == "" || len(s) > DefaultMaxLength {
		return false
	}
	if !charsetRegex.MatchString(s) {
		return false
	}
	return !strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}
