package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher
}

// recordingRecorder captures operation outcomes in call order.
type recordingRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingRecorder) RecordUserOperation(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, operation+":"+outcome)
}

func (r *recordingRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return ""
	}

	return r.calls[len(r.calls)-1]
}

func ptr[T any](v T) *T { return &v }

func newStoredUser(t *testing.T, hasher service.PasswordHasher, name, email string, role entity.Role) *entity.User {
	t.Helper()

	user, err := entity.NewUser(entity.NewUserInput{
		Name:     name,
		Email:    email,
		Password: "abc12345",
		Role:     role,
	}, hasher)
	require.NoError(t, err)

	return user
}
