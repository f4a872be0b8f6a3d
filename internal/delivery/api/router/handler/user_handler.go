// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"accounts/internal/delivery/api/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createUserRequest is the body of POST /users. Email and password rules are
// enforced by the domain so their failures keep their own error codes. Avatar
// is any reference the client stores, absolute or relative.
type createUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role" validate:"required,role"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,max=512"`
}

// updateUserRequest is the body of PUT /users/:id. Absent fields are left as they are.
type updateUserRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitempty,role"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar     *string `json:"avatar,omitempty" validate:"omitempty,max=512"`
	IsVerified *bool   `json:"isVerified,omitempty"`
}

// UserResponse is the public representation of a user. It never carries the password.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Bio        *string   `json:"bio"`
	Avatar     *string   `json:"avatar"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID(),
		Name:       user.Name(),
		Email:      user.Email().String(),
		Role:       user.Role().String(),
		Bio:        user.Bio(),
		Avatar:     user.Avatar(),
		IsVerified: user.IsVerified(),
		CreatedAt:  user.CreatedAt(),
		UpdatedAt:  user.UpdatedAt(),
	}
}

// UserHandler holds dependencies for user-related handlers. Request logging
// happens in middleware and the service.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	req.Role = strings.ToLower(req.Role)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// ListUsers handles GET /users. Malformed page or limit values are treated as absent.
func (h *UserHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.FindAll(c.Request().Context(), usecase.ListUsersInput{
		Page:  parseOptionalInt(c.QueryParam("page")),
		Limit: parseOptionalInt(c.QueryParam("limit")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]UserResponse, 0, len(output.Users))
	for _, user := range output.Users {
		users = append(users, newUserResponse(user))
	}

	return response.Paginated(c, users, response.Pagination{
		Page:  output.Page,
		Limit: output.Limit,
		Total: output.Total,
		Pages: output.Pages,
	})
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// GetUserByEmail handles GET /users/email/:email.
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	user, err := h.uc.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateUser handles PUT /users/:id as a partial update.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if req.Role != nil {
		lowered := strings.ToLower(*req.Role)
		req.Role = &lowered
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		IsVerified: req.IsVerified,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &v
}
