package uimsg

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLen matches the identity provider's minimum.
const MinPasswordLen = 6

// Deliberately simple: non-whitespace local part, an @, and a domain
// containing a dot. The backend does the authoritative validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLen
}
