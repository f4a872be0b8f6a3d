// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// Operation names used for logging and metrics.
const (
	opFindByID    = "find_by_id"
	opFindByEmail = "find_by_email"
	opFindAll     = "find_all"
	opCreate      = "create"
	opUpdate      = "update"
	opDelete      = "delete"
)

// Outcomes passed to the OperationRecorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	recorder usecase.OperationRecorder
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Recorder usecase.OperationRecorder `optional:"true"`
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	recorder := params.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		recorder: recorder,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *userService) record(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
		if _, ok := domainerrors.KindOf(err); ok {
			outcome = OutcomeRejected
		}
	}
	srv.recorder.RecordUserOperation(operation, outcome)
}

// FindByID returns the user or a UserNotFound domain error.
func (srv *userService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.loadUser(ctx, id)
	srv.record(opFindByID, err)

	return user, err
}

// FindByEmail looks the address up in its normalized form.
func (srv *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		err = domainerrors.ErrUserNotFound
	case err != nil:
		err = errors.Wrap(err, "failed to find user by email")
	}
	srv.record(opFindByEmail, err)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindAll forwards the raw pagination values; the repository owns clamping.
func (srv *userService) FindAll(ctx context.Context, input usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	page, err := srv.userRepo.FindAll(ctx, input.Page, input.Limit)
	if err != nil {
		err = errors.Wrap(err, "failed to list users")
		srv.record(opFindAll, err)

		return nil, err
	}
	srv.record(opFindAll, nil)

	return &usecase.UserListOutput{
		Users: page.Users,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: repository.TotalPages(page.Total, page.Limit),
	}, nil
}

// CreateUser rejects a taken email before building the entity, then persists it.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	user, err := srv.createUser(ctx, input)
	srv.record(opCreate, err)

	return user, err
}

func (srv *userService) createUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email), slog.String("role", input.Role.String()))

	taken, err := srv.emailTaken(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		srv.log(ctx).Warn("Email already in use", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyInUse
	}

	user, err := entity.NewUser(entity.NewUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Bio:      input.Bio,
		Avatar:   input.Avatar,
	}, srv.hasher)
	if err != nil {
		return nil, srv.passDomainError(ctx, err, "failed to build user")
	}

	created, err := srv.userRepo.Create(ctx, user)
	if err != nil {
		return nil, srv.passDomainError(ctx, err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.String("userID", created.ID()))

	return created, nil
}

// UpdateUser applies a partial update. An email change conflicts only with a
// different user's address.
func (srv *userService) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.updateUser(ctx, id, input)
	srv.record(opUpdate, err)

	return user, err
}

func (srv *userService) updateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && entity.NormalizeEmail(*input.Email) != user.Email().String() {
		taken, err := srv.emailTaken(ctx, *input.Email, user.ID())
		if err != nil {
			return nil, err
		}
		if taken {
			srv.log(ctx).Warn("Email already in use", slog.String("userID", id), slog.String("email", *input.Email))

			return nil, domainerrors.ErrEmailAlreadyInUse
		}
	}

	if err := user.Update(entity.UpdateUserInput{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Role:       input.Role,
		Bio:        input.Bio,
		Avatar:     input.Avatar,
		IsVerified: input.IsVerified,
	}, srv.hasher); err != nil {
		return nil, srv.passDomainError(ctx, err, "failed to apply user update")
	}

	updated, err := srv.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Deleted between the load and the write.
		srv.log(ctx).Warn("User vanished before update", slog.String("userID", id))

		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, srv.passDomainError(ctx, err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.String("userID", id))

	return updated, nil
}

// DeleteUser removes an existing user.
func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	err := srv.deleteUser(ctx, id)
	srv.record(opDelete, err)

	return err
}

func (srv *userService) deleteUser(ctx context.Context, id string) error {
	if _, err := srv.loadUser(ctx, id); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id))

	return nil
}

func (srv *userService) loadUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// emailTaken reports whether email belongs to a user other than ownerID.
func (srv *userService) emailTaken(ctx context.Context, email, ownerID string) (bool, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check email availability")
	}

	return existing.ID() != ownerID, nil
}

// passDomainError returns domain errors unchanged and wraps anything else.
func (srv *userService) passDomainError(ctx context.Context, err error, message string) error {
	if kind, ok := domainerrors.KindOf(err); ok {
		srv.log(ctx).Warn("User operation rejected", slog.String("kind", string(kind)), slog.String("reason", err.Error()))

		return err
	}
	srv.log(ctx).Error(message, slog.Any("error", err))

	return errors.Wrap(err, message)
}

type noopRecorder struct{}

func (noopRecorder) RecordUserOperation(string, string) {}
