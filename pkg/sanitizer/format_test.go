package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  John.Doe@Example.COM ",
			expected: "john.doe@example.com",
		},
		{
			name:     "consolidates consecutive dots in local part",
			input:    "john..doe@example.com",
			expected: "john.doe@example.com",
		},
		{
			name:     "invalid shape returned unchanged",
			input:    "not-an-email",
			expected: "not-an-email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "masks local part keeping first character",
			input:    "jane@acme.com",
			expected: "j***@acme.com",
		},
		{
			name:     "single character local part",
			input:    "j@acme.com",
			expected: "*@acme.com",
		},
		{
			name:     "non-address returned unchanged",
			input:    "not-an-email",
			expected: "not-an-email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps digits plus parens spaces and hyphens",
			input:    "+1 (555) 123-4567",
			expected: "+1 (555) 123-4567",
		},
		{
			name:     "strips letters and punctuation",
			input:    "call: 555.123.4567 ext#9",
			expected: " 5551234567 9",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizePhone(tt.input))
		})
	}
}
