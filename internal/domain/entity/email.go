package entity

import (
	"regexp"
	"strings"

	domainerrors "accounts/internal/domain/errors"
)

// Local part and every domain label begin and end with an alphanumeric, the
// TLD is two or more letters.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9]([a-zA-Z0-9._+%-]*[a-zA-Z0-9])?@[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}$`,
)

// Email is an immutable, validated and lower-cased email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns its lower-cased form. Whitespace anywhere,
// including around the address, makes it invalid.
func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: strings.ToLower(raw)}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// NormalizeEmail is the lookup key form of a raw address.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

