package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Username: letters, digits, dot, underscore, hyphen
	UsernamePattern = `^[a-zA-Z0-9._\-]{3,30}$`

	// Password min length
	PasswordMinLength = 8

	// Title min/max length for uploaded resources
	TitleMinLength = 1
	TitleMaxLength = 255
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Username *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidUsername reports whether the value is an acceptable username.
func IsValidUsername(value string) bool {
	return CompiledPatterns.Username.MatchString(value)
}

// IsValidTitle reports whether the value is an acceptable resource title.
func IsValidTitle(value string) bool {
	return len(value) >= TitleMinLength && len(value) <= TitleMaxLength
}
