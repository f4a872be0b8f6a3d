// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/api/response"
	"accounts/internal/delivery/api/validator"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeValidationFailed = "VALIDATION_FAILED"
	codeHTTPError        = "HTTP_ERROR"
	codeInternalError    = "INTERNAL_ERROR"

	internalErrorMessage = "Internal server error, please try again later"
)

// kindStatus maps every domain error kind to its HTTP status.
var kindStatus = map[domainerrors.Kind]int{
	domainerrors.KindInvalidEmail:      http.StatusBadRequest,
	domainerrors.KindInvalidPassword:   http.StatusBadRequest,
	domainerrors.KindInvalidRole:       http.StatusBadRequest,
	domainerrors.KindEmailAlreadyInUse: http.StatusConflict,
	domainerrors.KindUserNotFound:      http.StatusNotFound,
}

// StatusForKind returns the HTTP status for a domain error kind.
func StatusForKind(kind domainerrors.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if domainErr, ok := domainerrors.As(err); ok {
		_ = response.Error(c, StatusForKind(domainErr.Kind()), string(domainErr.Kind()), domainErr.Message(), nil)

		return
	}

	if details := validator.Details(err); details != nil {
		_ = response.BadRequest(c, codeValidationFailed, "Request validation failed", details)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			message = internalErrorMessage
		}

		_ = response.Error(c, httpErr.Code, codeHTTPError, message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, codeInternalError, internalErrorMessage)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.LoggerFrom(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
