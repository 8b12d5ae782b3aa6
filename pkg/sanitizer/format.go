package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an address, consolidating consecutive
// dots in the local part. Invalid shapes are returned unchanged so callers
// can still validate and report them.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail hides the local part of an address while preserving the domain,
// for safe inclusion in log output.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// SanitizePhone keeps only characters that may legitimately appear in a
// phone number: digits, plus sign, parentheses, spaces and hyphens.
func SanitizePhone(phone string) string {
	return nonPhoneRegex.ReplaceAllString(phone, "")
}

// NormalizePhone strips all formatting, leaving digits only.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}
