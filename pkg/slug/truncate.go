package slug

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FingerprintLength is the number of hex characters appended to a truncated
// slug to keep distinct long inputs distinct.
const FingerprintLength = 8

// TruncateOption configures the truncation behavior.
type TruncateOption func(*truncateConfig)

type truncateConfig struct {
	separator string
}

// TruncateSeparator sets the character placed between the truncated prefix
// and the fingerprint. Default is "_"; variants whose alphabet excludes
// underscores pass "-".
func TruncateSeparator(sep string) TruncateOption {
	return func(c *truncateConfig) {
		c.separator = sep
	}
}

// Truncate bounds a slug to maxLen bytes. Slugs that already fit are returned
// unchanged. Longer slugs are cut down and suffixed with the separator plus
// an 8-hex-character fingerprint of the full original slug, so two different
// long slugs sharing a truncated prefix still produce different results.
//
// When maxLen is smaller than the separator-plus-fingerprint reservation,
// there is no room for any prefix and the leading maxLen characters of the
// fingerprint are returned instead; maxLen <= 0 yields an empty string.
//
// Truncate is deterministic: identical input always produces identical output.
func Truncate(s string, maxLen int, opts ...TruncateOption) string {
	cfg := &truncateConfig{separator: "_"}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(s) <= maxLen {
		return s
	}

	fp := fingerprint(s)

	reserved := len(cfg.separator) + FingerprintLength
	if maxLen < reserved {
		if maxLen <= 0 {
			return ""
		}
		return fp[:maxLen]
	}

	prefix := strings.TrimRight(s[:maxLen-reserved], "-")
	return prefix + cfg.separator + fp
}

// fingerprint returns the first 8 lowercase hex characters of the SHA-256
// digest of s. Collision resistance, not cryptographic strength, is the point.
func fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:FingerprintLength/2])
}
