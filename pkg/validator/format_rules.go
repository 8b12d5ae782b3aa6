package validator

import (
	"regexp"
	"strings"
)

// emailRegex covers the address shapes accepted for web form input:
// a restricted local part, a dotted domain and a 2+ letter top-level label.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail validates that a string is a syntactically valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// IsEmail reports whether the value matches the address grammar used for
// form input. It intentionally rejects addresses containing control
// characters since the grammar only admits printable ASCII.
func IsEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return emailRegex.MatchString(value)
}
