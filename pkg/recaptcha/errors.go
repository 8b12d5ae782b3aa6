package recaptcha

import "errors"

var (
	// ErrInvalidConfig indicates the client was constructed without a usable configuration.
	ErrInvalidConfig = errors.New("recaptcha: invalid configuration")
	// ErrUnavailable indicates the verification service could not be reached.
	ErrUnavailable = errors.New("recaptcha: verification service unavailable")
	// ErrMalformedResponse indicates the service responded with an unparseable body.
	ErrMalformedResponse = errors.New("recaptcha: malformed verification response")
)
