// Package validator provides a small rule-based validation engine.
//
// Rules are plain values combining a check with the field-level error to
// report when the check fails. Apply runs the rules and accumulates every
// failure instead of stopping at the first one:
//
//	err := validator.Apply(
//		validator.MinLenString("name", name, 2),
//		validator.ValidEmail("email", email),
//		validator.InListString("category", category, allowed),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// inspect per-field failures
//	}
package validator
