package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	dotRegex = regexp.MustCompile(`\.+`)

	nonDigitRegex = regexp.MustCompile(`\D`)
	nonPhoneRegex = regexp.MustCompile(`[^0-9+()\s-]`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
