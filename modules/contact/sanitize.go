package contact

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// sanitized holds the submission fields after cleaning. Only these values
// ever reach the composed message.
type sanitized struct {
	Name     string
	Company  string
	Phone    string
	Email    string
	Message  string
	Category string
}

// sanitizeText cleans a free-text field: trim, strip control characters,
// HTML-escape, then cap to maxLen Unicode codepoints. The escape step is
// idempotent, so re-sanitizing an already clean value is a no-op.
func sanitizeText(value string, maxLen int) string {
	return sanitizer.MaxLength(sanitizer.Apply(value,
		sanitizer.Trim,
		sanitizer.RemoveControlChars,
		sanitizer.NormalizeHTMLEscape,
	), maxLen)
}

// validateEmail rejects header-injection payloads before any normalization:
// a raw value containing CR, LF or NUL must never be treated as an address.
// Otherwise it normalizes the value and checks the address grammar.
func validateEmail(value string) (string, error) {
	if strings.ContainsAny(value, "\r\n\x00") {
		return "", ErrSecurityViolation
	}

	normalized := sanitizer.NormalizeEmail(value)
	if !validator.IsEmail(normalized) {
		return "", ErrValidationFailed
	}

	return normalized, nil
}

// validatePhone keeps only plausible phone characters and caps the result.
// An empty value is valid and means "not provided".
func validatePhone(value string) string {
	return sanitizer.MaxLength(sanitizer.Apply(value,
		sanitizer.Trim,
		sanitizer.SanitizePhone,
	), maxPhoneLen)
}

// sanitizeSubmission cleans every field and accumulates required-field
// failures. The returned error, when non-nil, is validator.ValidationErrors;
// injection reports whether the email field carried header-injection markers.
func sanitizeSubmission(sub Submission) (clean sanitized, injection bool, err error) {
	clean = sanitized{
		Name:     sanitizeText(sub.Name, maxNameLen),
		Company:  sanitizeText(sub.Company, maxCompanyLen),
		Phone:    validatePhone(sub.Phone),
		Message:  sanitizeText(sub.Message, maxMessageLen),
		Category: sanitizeText(sub.Category, maxCategoryLen),
	}

	var verrs validator.ValidationErrors

	if rulesErr := validator.Apply(
		validator.MinLenString("name", clean.Name, 2),
		validator.MinLenString("company", clean.Company, 2),
		validator.RequiredString("category", clean.Category),
		validator.InListString("category", clean.Category, Categories),
	); rulesErr != nil {
		verrs = append(verrs, validator.ExtractValidationErrors(rulesErr)...)
	}

	email, emailErr := validateEmail(sub.Email)
	switch {
	case emailErr == nil:
		clean.Email = email
	default:
		injection = errors.Is(emailErr, ErrSecurityViolation)
		verrs.Add(validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if verrs.IsEmpty() {
		return clean, false, nil
	}
	return clean, injection, verrs
}
