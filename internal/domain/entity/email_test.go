package entity

import (
	"strings"
	"testing"

	domainerrors "accounts/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "missing at", raw: "janeexample.com"},
		{name: "multiple at", raw: "jane@doe@example.com"},
		{name: "empty local part", raw: "@example.com"},
		{name: "empty domain", raw: "jane@"},
		{name: "domain starts with dot", raw: "jane@.example.com"},
		{name: "local starts with dot", raw: ".jane@example.com"},
		{name: "local ends with dot", raw: "jane.@example.com"},
		{name: "domain ends with dot", raw: "jane@example.com."},
		{name: "internal whitespace", raw: "ja ne@example.com"},
		{name: "leading whitespace", raw: " jane@example.com"},
		{name: "trailing whitespace", raw: "jane@example.com "},
		{name: "short tld", raw: "jane@example.c"},
		{name: "numeric tld", raw: "jane@example.12"},
		{name: "no tld", raw: "jane@localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
			assert.Empty(t, email.String())
		})
	}
}

func TestNewEmail_Valid(t *testing.T) {
	tests := []string{
		"jane@example.com",
		"Jane.Doe@Example.COM",
		"j@x.io",
		"first+tag@sub.example.co.uk",
		"a_b-c%d@my-domain.org",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			email, err := NewEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(raw), email.String())

			again, err := NewEmail(email.String())
			require.NoError(t, err)
			assert.True(t, email.Equals(again))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.com "))
}
