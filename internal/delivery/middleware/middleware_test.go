package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	var seenCtxID string
	var seenLogger *slog.Logger
	handler := mw.Process(func(c echo.Context) error {
		seenCtxID = deliverycontext.RequestIDFrom(c.Request().Context())
		seenLogger = deliverycontext.LoggerFrom(c.Request().Context(), nil)

		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "reuses client id", header: "client-id-1", wantSame: true},
		{name: "generates when absent", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", deliverycontext.MaxRequestIDLength+1)},
		{name: "replaces id with control characters", header: "req-1\rlevel=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.Equal(t, got, seenCtxID)
			assert.NotNil(t, seenLogger)
		})
	}
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
		wantCode  int
	}{
		{
			name:     "success skipped outside debug",
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantCode: http.StatusOK,
		},
		{
			name:      "success logged in debug",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "INFO",
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error logged as warning",
			handler:   func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "nope") },
			wantLog:   true,
			wantLevel: "WARN",
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "server error logged as error",
			handler:   func(echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError) },
			wantLog:   true,
			wantLevel: "ERROR",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users?page=2", nil), rec)
			c.SetPath("/users")

			require.NoError(t, mw.Handle(tt.handler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "HTTP Request", entry["msg"])
			assert.Equal(t, "/users", entry["route"])
			assert.Equal(t, "page=2", entry["query"])
			assert.EqualValues(t, tt.wantCode, entry["status"])
		})
	}
}

type observation struct {
	method, route string
	status        int
	size          int64
}

type fakeHTTPRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (f *fakeHTTPRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, observation{method: method, route: route, status: status, size: size})
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	recorder := &fakeHTTPRecorder{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(recorder).Handle)
	e.GET("/users/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}

		return c.String(http.StatusOK, "ok")
	})

	for _, path := range []string{"/users/1", "/users/missing", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, recorder.obs, 3)
	assert.Equal(t, observation{method: http.MethodGet, route: "/users/:id", status: http.StatusOK, size: 2}, recorder.obs[0])
	assert.Equal(t, "/users/:id", recorder.obs[1].route)
	assert.Equal(t, http.StatusNotFound, recorder.obs[1].status)
	assert.Equal(t, http.StatusNotFound, recorder.obs[2].status)
}
