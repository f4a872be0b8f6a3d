// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"github.com/google/uuid"
)

// User is the account aggregate. The password is always held hashed once the
// user has been constructed.
type User struct {
	id         string
	name       string
	email      Email
	password   Password
	role       Role
	bio        *string
	avatar     *string
	isVerified bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewUserInput carries the fields accepted when registering a user.
type NewUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	Bio      *string
	Avatar   *string
}

// UpdateUserInput carries a partial update. A nil field leaves the current
// value untouched.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Password   *string
	Role       *Role
	Bio        *string
	Avatar     *string
	IsVerified *bool
}

// NewUser validates the email, the password and the role in that order, hashes
// the password and returns an unverified user with a fresh time-ordered id.
func NewUser(input NewUserInput, hasher service.PasswordHasher) (*User, error) {
	email, err := NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	plain, err := NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(input.Role.String())
	}

	hashed, err := plain.Hash(hasher)
	if err != nil {
		return nil, err
	}

	id, err := NewUserID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &User{
		id:         id,
		name:       input.Name,
		email:      email,
		password:   hashed,
		role:       input.Role,
		bio:        cloneString(input.Bio),
		avatar:     cloneString(input.Avatar),
		isVerified: false,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewUserID returns a UUIDv7 string. Its textual form sorts by creation time.
func NewUserID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "generate user id")
	}

	return id.String(), nil
}

// ReconstituteUser rebuilds a user from persisted state.
func ReconstituteUser(
	id, name string,
	email Email,
	password Password,
	role Role,
	bio, avatar *string,
	isVerified bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:         id,
		name:       name,
		email:      email,
		password:   password,
		role:       role,
		bio:        cloneString(bio),
		avatar:     cloneString(avatar),
		isVerified: isVerified,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update applies input. Email, role and password are validated in that order,
// and the password hashed, before any field is written, so a failed update
// leaves u unchanged.
func (u *User) Update(input UpdateUserInput, hasher service.PasswordHasher) error {
	email := u.email
	if input.Email != nil && *input.Email != u.email.String() {
		parsed, err := NewEmail(*input.Email)
		if err != nil {
			return err
		}
		email = parsed
	}

	if input.Role != nil && !input.Role.IsValid() {
		return domainerrors.ErrInvalidRole.WithDetails(input.Role.String())
	}

	password := u.password
	if input.Password != nil {
		plain, err := NewPassword(*input.Password)
		if err != nil {
			return err
		}
		hashed, err := plain.Hash(hasher)
		if err != nil {
			return err
		}
		password = hashed
	}

	u.email = email
	u.password = password
	if input.Name != nil {
		u.name = *input.Name
	}
	if input.Role != nil {
		u.role = *input.Role
	}
	if input.Bio != nil {
		u.bio = cloneString(input.Bio)
	}
	if input.Avatar != nil {
		u.avatar = cloneString(input.Avatar)
	}
	if input.IsVerified != nil {
		u.isVerified = *input.IsVerified
	}
	u.updatedAt = time.Now().UTC()

	return nil
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.bio = cloneString(u.bio)
	c.avatar = cloneString(u.avatar)

	return &c
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Password() Password   { return u.password }
func (u *User) Role() Role           { return u.role }
func (u *User) Bio() *string         { return cloneString(u.bio) }
func (u *User) Avatar() *string      { return cloneString(u.avatar) }
func (u *User) IsVerified() bool     { return u.isVerified }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
