package entity

import (
	"testing"

	domainerrors "accounts/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: "abc1234"},
		{name: "no digit", raw: "abcdefgh"},
		{name: "no letter", raw: "12345678"},
		{name: "symbols and digits only", raw: "!!!!1234"},
		{name: "seven characters over eight bytes", raw: "éééabc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPassword(tt.raw)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
		})
	}
}

func TestNewPassword_CountsCharacters(t *testing.T) {
	p, err := NewPassword("ééééabc1")

	require.NoError(t, err)
	assert.Equal(t, "ééééabc1", p.String())
}

func TestNewPassword_ValidIsPlain(t *testing.T) {
	p, err := NewPassword("abc12345")

	require.NoError(t, err)
	assert.False(t, p.IsHashed())
	assert.Equal(t, "abc12345", p.String())
}

func TestPassword_Hash(t *testing.T) {
	hasher := &minCostHasher{}
	plain, err := NewPassword("abc12345")
	require.NoError(t, err)

	hashed, err := plain.Hash(hasher)
	require.NoError(t, err)

	assert.True(t, hashed.IsHashed())
	assert.NotEqual(t, "abc12345", hashed.String())
	assert.False(t, plain.IsHashed(), "receiver must not change")

	again, err := hashed.Hash(hasher)
	require.NoError(t, err)
	assert.Equal(t, hashed, again)
	assert.Equal(t, 1, hasher.calls)
}

func TestPassword_HashDistinctInputs(t *testing.T) {
	hasher := &minCostHasher{}
	a, _ := NewPassword("abc12345")
	b, _ := NewPassword("xyz98765")

	ha, err := a.Hash(hasher)
	require.NoError(t, err)
	hb, err := b.Hash(hasher)
	require.NoError(t, err)

	assert.NotEqual(t, ha.String(), hb.String())
}

func TestPassword_HashError(t *testing.T) {
	plain, _ := NewPassword("abc12345")

	_, err := plain.Hash(failingHasher{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash password")
}

func TestPassword_Compare(t *testing.T) {
	hasher := &minCostHasher{}
	plain, _ := NewPassword("abc12345")
	hashed, err := plain.Hash(hasher)
	require.NoError(t, err)

	assert.True(t, hashed.Compare(hasher, "abc12345"))
	assert.False(t, hashed.Compare(hasher, "abc12346"))
	assert.False(t, plain.Compare(hasher, "abc12345"), "plain passwords never match")
}

func TestPasswordFromHash(t *testing.T) {
	hasher := &minCostHasher{}
	stored, err := hasher.Hash("abc12345")
	require.NoError(t, err)

	p := PasswordFromHash(stored)

	assert.True(t, p.IsHashed())
	assert.Equal(t, stored, p.String())
	assert.True(t, p.Compare(hasher, "abc12345"))
}
