package models

import (
	"unicode/utf8"

	dErrors "georef/pkg/domain-errors"
)

const (
	// maxTextLen bounds name and native name fields, counted in characters so
	// non-Latin scripts are not penalized for multi-byte encodings.
	maxTextLen = 100
	// maxCodeLen bounds division and urban ISO-style codes.
	maxCodeLen = 5
)

// requireText enforces requiredness and the character bound on a text field.
// Oversized input is rejected, never truncated.
func requireText(field, value string, max int) error {
	if value == "" {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s cannot be empty", field)
	}
	if utf8.RuneCountInString(value) > max {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must be %d characters or less", field, max)
	}
	return nil
}

// requireAlpha2 enforces an ISO 3166-1 alpha-2 code: exactly two ASCII
// uppercase letters.
func requireAlpha2(field, value string) error {
	if len(value) != 2 {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must be exactly 2 characters", field)
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "%s must be uppercase ASCII letters", field)
		}
	}
	return nil
}

func requireNonNegative(field string, n int64) error {
	if n < 0 {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "%s cannot be negative", field)
	}
	return nil
}
