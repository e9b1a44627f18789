// Package validation contains the field-level constraint checks applied to
// mutating requests. Every rule is a pure, total predicate.
package validation

import (
	"regexp"
	"strings"
)

const (
	nameMinLen     = 20
	nameMaxLen     = 60
	addressMaxLen  = 400
	passwordMinLen = 8
	passwordMaxLen = 16
)

// emailPattern accepts the local@domain.tld shape: non-whitespace local and
// domain parts with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidName reports whether name is 20-60 characters long.
func ValidName(name string) bool {
	return len(name) >= nameMinLen && len(name) <= nameMaxLen
}

// ValidEmail reports whether email matches the expected address shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidAddress reports whether address is at most 400 characters long.
// An empty address is allowed; presence is checked separately per operation.
func ValidAddress(address string) bool {
	return len(address) <= addressMaxLen
}

// StrongPassword reports whether password is 8-16 characters long and
// contains at least one uppercase ASCII letter and at least one character
// outside [A-Za-z0-9].
func StrongPassword(password string) bool {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}

	hasUpper := strings.ContainsFunc(password, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
	hasSpecial := strings.ContainsFunc(password, func(r rune) bool {
		isAlnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')

		return !isAlnum
	})

	return hasUpper && hasSpecial
}

// ValidRatingValue reports whether value is an integer in [1,5].
func ValidRatingValue(value int) bool {
	return value >= 1 && value <= 5
}
