package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/internal/delivery/api/response"
	"accounts/internal/delivery/api/validator"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForKind(t *testing.T) {
	for _, kind := range domainerrors.Kinds {
		assert.NotEqual(t, http.StatusInternalServerError, StatusForKind(kind), "kind %s has no status", kind)
	}
	assert.Equal(t, http.StatusInternalServerError, StatusForKind("SOMETHING_ELSE"))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	validationErr := validator.New().Validate(struct {
		Name string `json:"name" validate:"required"`
	}{})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails bool
	}{
		{
			name:        "user not found",
			err:         domainerrors.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "USER_NOT_FOUND",
			wantMessage: "user not found",
		},
		{
			name:        "duplicate email through wrapping",
			err:         errors.WithStack(domainerrors.ErrEmailAlreadyInUse.WithDetails("uq_users_email")),
			wantStatus:  http.StatusConflict,
			wantCode:    "EMAIL_ALREADY_IN_USE",
			wantMessage: "email is already in use",
		},
		{
			name:        "invalid role",
			err:         errors.Wrap(domainerrors.ErrInvalidRole, "create user"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_ROLE",
			wantMessage: "role must be one of: student, teacher, admin",
		},
		{
			name:        "invalid email",
			err:         domainerrors.ErrInvalidEmail,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_EMAIL",
			wantMessage: "invalid email address",
		},
		{
			name:       "invalid password",
			err:        domainerrors.ErrInvalidPassword,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PASSWORD",
		},
		{
			name:        "validation failure",
			err:         errors.WithStack(validationErr),
			wantStatus:  http.StatusBadRequest,
			wantCode:    codeValidationFailed,
			wantMessage: "Request validation failed",
			wantDetails: true,
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    codeHTTPError,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unexpected error is hidden",
			err:         errors.New("pq: connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    codeInternalError,
			wantMessage: internalErrorMessage,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users/1", nil), rec)
			deliverycontext.SetRequestID(c, "req-42")

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, response.StatusError, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, "req-42", body.RequestID)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
			if tt.wantDetails {
				assert.Equal(t, map[string]any{"name": "is required"}, body.Details)
			} else {
				assert.Nil(t, body.Details)
			}
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(domainerrors.ErrUserNotFound, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
