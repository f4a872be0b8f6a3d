package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrap_PreservesCause(t *testing.T) {
	base := New("boom")

	wrapped := Wrap(base, "loading user")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Cause(wrapped))
	assert.Equal(t, "loading user: boom", wrapped.Error())
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codeError{code: 7}, "op %s", "find")

	got, ok := AsType[*codeError](err)
	require.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}
