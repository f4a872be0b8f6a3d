// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/errors"
)

// ErrUserNotFound is returned by lookups that match no user.
var ErrUserNotFound = errors.New("user not found")

// UserPage is one window of users plus the total number of stored users.
type UserPage struct {
	Users []*entity.User
	Total int64
	Page  int
	Limit int
}

// UserRepository defines the standard operations for user persistence.
// Implementations must be safe for concurrent use.
type UserRepository interface {
	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail matches case-insensitively and returns ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll applies NormalizePage to the raw page and limit.
	FindAll(ctx context.Context, page, limit *int) (*UserPage, error)

	// Create stores a new user and returns the persisted representation.
	// A duplicate email yields domainerrors.ErrEmailAlreadyInUse.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update overwrites the stored user with the same id.
	// A duplicate email yields domainerrors.ErrEmailAlreadyInUse.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes the user. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
