// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the GORM-backed repository.UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by lower-cased email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "email = ?", strings.ToLower(email))
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM)
}

// FindAll returns a page ordered by id, which is creation order for UUIDv7.
func (repo *userRepository) FindAll(ctx context.Context, page, limit *int) (*repository.UserPage, error) {
	window := repository.NormalizePage(page, limit)

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	result := &repository.UserPage{
		Users: []*entity.User{},
		Total: total,
		Page:  window.Page,
		Limit: window.Limit,
	}
	if window.CountOnly() {
		return result, nil
	}

	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Limit(window.Limit).
		Offset(window.Offset).
		Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	result.Users = make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		user, err := toUserDomain(&userMs[i])
		if err != nil {
			return nil, err
		}
		result.Users = append(result.Users, user)
	}

	return result, nil
}

// Create inserts the user and returns the stored row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return nil, translateWriteError(err, "failed to create user")
	}

	return toUserDomain(userM)
}

// Update overwrites every mutable column of the row with the user's id.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"name":        userM.Name,
			"email":       userM.Email,
			"password":    userM.Password,
			"role":        userM.Role,
			"bio":         userM.Bio,
			"avatar":      userM.Avatar,
			"is_verified": userM.IsVerified,
			"updated_at":  userM.UpdatedAt,
		})
	if result.Error != nil {
		return nil, translateWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(userM)
}

// Delete hard-deletes the row. A missing id is not an error.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func translateWriteError(err error, message string) error {
	if constraint, ok := uniqueConstraintName(err); ok {
		return domainerrors.ErrEmailAlreadyInUse.WithDetails(constraint)
	}
	if isNotNullConstraintViolation(err) {
		return errors.Wrap(err, message+": missing required column")
	}

	return errors.Wrap(err, message)
}

// --- Mapper Functions ---

// toUserDomain converts a stored row to a domain User. The stored email is
// re-validated; a row that fails is reported as corrupt.
func toUserDomain(data *model.UserModel) (*entity.User, error) {
	if data == nil {
		return nil, nil
	}

	email, err := entity.NewEmail(data.Email)
	if err != nil {
		return nil, errors.Wrapf(err, "stored email for user %s", data.ID)
	}

	return entity.ReconstituteUser(
		data.ID,
		data.Name,
		email,
		entity.PasswordFromHash(data.Password),
		entity.Role(data.Role),
		data.Bio,
		data.Avatar,
		data.IsVerified,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

// fromUserDomain converts a domain User to a UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID(),
		Name:       data.Name(),
		Email:      data.Email().String(),
		Password:   data.Password().String(),
		Role:       data.Role().String(),
		Bio:        data.Bio(),
		Avatar:     data.Avatar(),
		IsVerified: data.IsVerified(),
		CreatedAt:  data.CreatedAt(),
		UpdatedAt:  data.UpdatedAt(),
	}
}
