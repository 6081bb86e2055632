package utils

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailValid reports whether the address has a plausible mailbox shape.
func IsEmailValid(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsPasswordValid enforces the password length policy.
func IsPasswordValid(password string) bool {
	return len(password) >= 6 && len(password) <= 50
}
