// Package context threads per-request values from the account API down to the
// user service: the request id that error envelopes report back to callers, and
// a logger already tagged with it so service log lines can be joined to a call.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
)

const (
	// HeaderXRequestID carries the id in both directions.
	HeaderXRequestID = echo.HeaderXRequestID

	// LogAttrRequestID names the id on every request-scoped log line.
	LogAttrRequestID = "request_id"

	// MaxRequestIDLength bounds client-supplied request ids.
	MaxRequestIDLength = 128

	echoRequestIDKey = "accounts.request_id"
)

// AcceptableRequestID reports whether a client-supplied id can be reused as is.
// It must be non-empty, at most MaxRequestIDLength bytes and made of visible
// ASCII, since it is echoed into response headers and log lines.
func AcceptableRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}

// GetRequestID returns the id for c. It reads the echo context first, then the
// request context, and returns "" outside the request-id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestIDFrom returns the id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// LoggerFrom returns the request-scoped logger, or fallback when ctx carries none.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
