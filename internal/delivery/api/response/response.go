// Package response builds the JSON envelopes returned by the HTTP API.
package response

import (
	"net/http"

	deliverycontext "accounts/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Status     string      `json:"status"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the window a list response covers.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Code      string `json:"code"`              // Machine-readable error code, e.g., "USER_NOT_FOUND"
	Details   any    `json:"details,omitempty"` // Only sent with 4xx responses
	RequestID string `json:"request_id,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status: StatusSuccess,
		Data:   data,
	})
}

// Paginated returns a successful list response with its pagination block.
func Paginated(c echo.Context, data any, pagination Pagination) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Status:     StatusSuccess,
		Data:       data,
		Pagination: &pagination,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Status:    StatusError,
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
