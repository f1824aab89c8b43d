package ean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pimkit/pkg/ean"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces removed",
			input:    "123 456 789 012",
			expected: "123456789012",
		},
		{
			name:     "hyphens removed not replaced",
			input:    "4006381-333931",
			expected: "4006381333931",
		},
		{
			name:     "letters removed entirely",
			input:    "EAN: 40063813339x31",
			expected: "4006381333931",
		},
		{
			name:     "already canonical",
			input:    "96385074",
			expected: "96385074",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "no digits at all",
			input:    "no-code-here",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ean.Normalize(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "EAN-8", input: "96385074", expected: true},
		{name: "UPC-A", input: "123456789012", expected: true},
		{name: "EAN-13", input: "4006381333931", expected: true},
		{name: "GTIN-14", input: "12345678901234", expected: true},
		{name: "too short", input: "12345", expected: false},
		{name: "unrecognized width", input: "1234567890", expected: false},
		{name: "too long", input: "123456789012345", expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "letter inside", input: "40063813339x1", expected: false},
		{name: "spaces not tolerated", input: "123 456 789 012", expected: false},
		// Width is the only rule: a wrong check digit still passes.
		{name: "check digit not verified", input: "12345678", expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ean.Valid(tt.input))
		})
	}
}
