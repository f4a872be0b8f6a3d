// Package memory implements the repository ports on process memory.
// It backs the "memory" storage driver and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
)

// UserRepository keeps users in a map keyed by id. Stored and returned
// users are copies, so callers never share state with the store.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string
}

// NewUserRepository returns an empty in-memory repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.users[id].Clone(), nil
}

// FindAll returns users ordered by id.
func (r *UserRepository) FindAll(_ context.Context, page, limit *int) (*repository.UserPage, error) {
	window := repository.NormalizePage(page, limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := &repository.UserPage{
		Users: []*entity.User{},
		Total: int64(len(r.users)),
		Page:  window.Page,
		Limit: window.Limit,
	}
	if window.CountOnly() || window.Offset < 0 || window.Offset >= len(r.users) {
		return result, nil
	}

	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	end := min(window.Offset+window.Limit, len(ids))
	for _, id := range ids[window.Offset:end] {
		result.Users = append(result.Users, r.users[id].Clone())
	}

	return result, nil
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := user.Email().String()
	if _, taken := r.byEmail[email]; taken {
		return nil, domainerrors.ErrEmailAlreadyInUse.WithDetails(email)
	}

	r.users[user.ID()] = user.Clone()
	r.byEmail[email] = user.ID()

	return user.Clone(), nil
}

func (r *UserRepository) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID()]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	email := user.Email().String()
	if owner, taken := r.byEmail[email]; taken && owner != user.ID() {
		return nil, domainerrors.ErrEmailAlreadyInUse.WithDetails(email)
	}

	delete(r.byEmail, current.Email().String())
	r.users[user.ID()] = user.Clone()
	r.byEmail[email] = user.ID()

	return user.Clone(), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		delete(r.byEmail, user.Email().String())
		delete(r.users, id)
	}

	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
