package password

import (
	"strings"
	"unicode"

	"taskbox/shared/failure"
)

const MinLength = 8

// ValidatePolicy checks a plaintext password against the signup policy and
// reports every unmet rule at once, so the caller sees the full list of
// missing categories rather than the first one.
func ValidatePolicy(password string) error {
	var missing []string

	if len(password) < MinLength {
		missing = append(missing, "at least 8 characters")
	}

	var hasLower, hasUpper, hasDigit bool

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLower {
		missing = append(missing, "a lowercase letter (a-z)")
	}

	if !hasUpper {
		missing = append(missing, "an uppercase letter (A-Z)")
	}

	if !hasDigit {
		missing = append(missing, "a number (0-9)")
	}

	if len(missing) > 0 {
		return failure.BadRequestFromString("Password must include: " + strings.Join(missing, ", ") + ".") //nolint:wrapcheck
	}

	return nil
}
