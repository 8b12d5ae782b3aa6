package contact

import "errors"

// The submission pipeline reports failures through this closed taxonomy.
// Every kind resolves to the same failure redirect at the HTTP boundary;
// the distinction exists only for server-side logging and tests.
var (
	// ErrMethodNotAllowed indicates a request method other than POST.
	ErrMethodNotAllowed = errors.New("contact: method not allowed")

	// ErrBotDetected indicates a honeypot trip or a failed verification outcome.
	ErrBotDetected = errors.New("contact: bot detected")

	// ErrValidationFailed indicates one or more required fields were invalid.
	ErrValidationFailed = errors.New("contact: validation failed")

	// ErrSecurityViolation indicates a header-injection attempt in the email field.
	ErrSecurityViolation = errors.New("contact: security violation")

	// ErrUpstreamUnavailable indicates the verification service could not be
	// reached or produced a malformed response.
	ErrUpstreamUnavailable = errors.New("contact: verification service unavailable")

	// ErrConfigurationError indicates a resolved recipient failed its own validation.
	ErrConfigurationError = errors.New("contact: invalid recipient configuration")

	// ErrDispatchFailed indicates the email transport returned a failure.
	ErrDispatchFailed = errors.New("contact: failed to dispatch message")
)
