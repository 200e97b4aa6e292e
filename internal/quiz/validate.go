package quiz

import (
	"regexp"
	"strings"
)

// Basic format check only: local-part@domain with a dot in the domain.
// Anything stricter belongs to an email verification flow, which this
// application does not have.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidName reports whether the name is acceptable: non-empty after
// trimming.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidEmail reports whether the email is syntactically plausible.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
