// Package recaptcha verifies anti-automation tokens against the Google
// reCAPTCHA siteverify endpoint.
//
// The Verifier interface is narrow (submit a token and client IP, receive a
// success flag and optional confidence score) so business logic can
// substitute a deterministic fake in tests. The HTTP client makes
// exactly one bounded-timeout attempt per call and never retries; callers
// that gate on the outcome should treat any error as a failed verification.
package recaptcha
