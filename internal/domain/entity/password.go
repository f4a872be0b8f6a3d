package entity

import (
	"strings"
	"unicode/utf8"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

const minPasswordLength = 8

// Password is either a plain candidate awaiting hashing or an opaque stored hash.
// Values are immutable; Hash returns a new Password.
type Password struct {
	value  string
	hashed bool
}

// NewPassword validates a plain password: at least 8 characters with at least
// one ASCII letter and one digit.
func NewPassword(raw string) (Password, error) {
	if utf8.RuneCountInString(raw) < minPasswordLength {
		return Password{}, domainerrors.ErrInvalidPassword
	}
	if !strings.ContainsAny(raw, "0123456789") || !strings.ContainsFunc(raw, isASCIILetter) {
		return Password{}, domainerrors.ErrInvalidPassword
	}

	return Password{value: raw}, nil
}

// PasswordFromHash wraps a stored hash without validation.
func PasswordFromHash(hash string) Password {
	return Password{value: hash, hashed: true}
}

// Hash returns the hashed form. An already hashed password is returned as is.
func (p Password) Hash(hasher service.PasswordHasher) (Password, error) {
	if p.hashed {
		return p, nil
	}

	hash, err := hasher.Hash(p.value)
	if err != nil {
		return Password{}, errors.Wrap(err, "hash password")
	}

	return Password{value: hash, hashed: true}, nil
}

// Compare reports whether candidate matches the stored hash. A plain password
// never matches.
func (p Password) Compare(hasher service.PasswordHasher, candidate string) bool {
	if !p.hashed {
		return false
	}

	return hasher.Check(candidate, p.value)
}

func (p Password) IsHashed() bool { return p.hashed }

// String returns the held value, plain or hashed.
func (p Password) String() string { return p.value }

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
