package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// minCostHasher keeps bcrypt semantics while staying fast in tests.
type minCostHasher struct {
	calls int
}

func (h *minCostHasher) Hash(password string) (string, error) {
	h.calls++
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	return string(b), err
}

func (h *minCostHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hasher unavailable") }
func (failingHasher) Check(string, string) bool   { return false }

func ptr[T any](v T) *T { return &v }

func newTestUser(t *testing.T, hasher *minCostHasher) *User {
	t.Helper()

	user, err := NewUser(NewUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "abc12345",
		Role:     RoleTeacher,
		Bio:      ptr("teaches maths"),
	}, hasher)
	require.NoError(t, err)

	return user
}
