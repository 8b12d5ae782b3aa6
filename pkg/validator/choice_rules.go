package validator

import (
	"fmt"
	"slices"
)

// InList validates that a value is one of the allowed values.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

// InListString validates that a string is one of the allowed values.
func InListString(field, value string, allowedValues []string) Rule {
	return InList(field, value, allowedValues)
}
