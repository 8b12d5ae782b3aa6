// Package sanitizer provides small, stateless helpers for cleaning and
// securing untrusted string input.
//
// The helpers fall into a few groups:
//
//   - Strings – trimming, rune-safe length capping, whitespace and control
//     character normalization.
//
//   - Security – HTML escaping, including an idempotent variant that never
//     double-encodes entities, and single-line folding for log-bound values.
//
//   - Format – e-mail and phone number normalization, plus masking helpers
//     that redact addresses before they reach log output.
//
// None of the helpers returns an error; they always fall back to a safe
// result. The higher-order Apply and Compose helpers build sanitization
// pipelines:
//
//	clean := sanitizer.Compose(
//		sanitizer.Trim,
//		sanitizer.RemoveControlChars,
//	)
package sanitizer
