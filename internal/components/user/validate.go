package user

import (
	"strings"
	"unicode/utf8"
)

const (
	msgUsernameTooShort = "Username must be at least 3 characters long"
	msgPasswordTooShort = "Password must be at least 6 characters long"
)

type (
	// ValidationError carries every message from a failed validation pass.
	ValidationError struct {
		Errors []string
	}
)

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Validate checks credential shape before any I/O. Both rules are evaluated
// independently so the caller gets every problem at once, username first.
// The username is trimmed before measuring; the password is not. Lengths are
// counted in characters, not bytes, so multi-byte input is measured the same
// way the client sees it.
func Validate(username, password string) []string {
	var errs []string

	if utf8.RuneCountInString(strings.TrimSpace(username)) < 3 {
		errs = append(errs, msgUsernameTooShort)
	}

	if utf8.RuneCountInString(password) < 6 {
		errs = append(errs, msgPasswordTooShort)
	}

	return errs
}
