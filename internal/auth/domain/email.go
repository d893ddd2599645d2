package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// emailPattern requires a local part, an @, and a dotted domain with a
// TLD of at least two letters. Deliberately stricter than net/mail,
// which would accept addresses like "user@domain".
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	ErrEmailEmpty  = errors.New("domain: email cannot be null or empty")
	ErrEmailFormat = errors.New("domain: invalid email format")
)

// Email is a validated email address. The zero value is invalid; only
// NewEmail can produce a usable instance.
type Email struct {
	value string
}

// NewEmail trims surrounding whitespace and validates the address.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, ErrEmailEmpty
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, fmt.Errorf("%w: %s", ErrEmailFormat, trimmed)
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether the value was never constructed through NewEmail.
func (e Email) IsZero() bool { return e.value == "" }
