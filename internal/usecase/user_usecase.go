// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Bio      *string
	Avatar   *string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Password   *string
	Role       *entity.Role
	Bio        *string
	Avatar     *string
	IsVerified *bool
}

// ListUsersInput holds raw pagination values exactly as the caller sent them.
type ListUsersInput struct {
	Page  *int
	Limit *int
}

// --- Output DTOs ---

// UserListOutput is one page of users with pagination metadata.
type UserListOutput struct {
	Users []*entity.User
	Total int64
	Page  int
	Limit int
	Pages int64
}

// UserUsecase defines the user account operations the delivery layer depends on.
// Failures carry a domain error kind from internal/domain/errors when they are
// business outcomes: user not found, email already in use, invalid email or
// invalid password. Any other error is unexpected.
type UserUsecase interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, input ListUsersInput) (*UserListOutput, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// OperationRecorder counts user operations by outcome.
type OperationRecorder interface {
	RecordUserOperation(operation, outcome string)
}
