package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration, responseSize int64)
}

// MetricsMiddleware reports request counts, latency and response size labelled
// by the matched route pattern.
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle commits handler errors through the echo error handler before
// observing, so the recorded status is the one sent to the client.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start), c.Response().Size)

		return nil
	}
}
