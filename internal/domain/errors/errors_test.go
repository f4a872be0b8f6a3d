package errors

import (
	stderrors "errors"
	"testing"

	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	detailed := ErrEmailAlreadyInUse.WithDetails("jane@example.com")

	assert.True(t, stderrors.Is(detailed, ErrEmailAlreadyInUse))
	assert.False(t, stderrors.Is(detailed, ErrUserNotFound))
	assert.Equal(t, "email is already in use: jane@example.com", detailed.Error())
	assert.Equal(t, "email is already in use", detailed.Message())
}

func TestError_SurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrUserNotFound.WrapMessage("find user"), "update user")

	assert.True(t, errors.Is(wrapped, ErrUserNotFound))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindUserNotFound, kind)

	domainErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "user not found", domainErr.Message())
}

func TestKindOf_NonDomainError(t *testing.T) {
	_, ok := KindOf(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestKinds_AreDistinct(t *testing.T) {
	seen := make(map[Kind]struct{}, len(Kinds))
	for _, k := range Kinds {
		_, dup := seen[k]
		assert.False(t, dup, "duplicate kind %s", k)
		seen[k] = struct{}{}
	}
	assert.Len(t, seen, 5)
}
