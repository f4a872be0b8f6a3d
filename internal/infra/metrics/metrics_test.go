package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest(http.MethodGet, "/users/:id", http.StatusOK, 20*time.Millisecond, 512)
	m.RecordHTTPRequest(http.MethodGet, "/users/:id", http.StatusOK, 5*time.Millisecond, 256)
	m.RecordHTTPRequest(http.MethodGet, "/users/:id", http.StatusNotFound, time.Millisecond, 64)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/users/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/users/:id", "404")))
}

func TestRecordUserOperation(t *testing.T) {
	m := New()

	m.RecordUserOperation("create", "success")
	m.RecordUserOperation("create", "rejected")
	m.RecordUserOperation("create", "rejected")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.userOperationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.userOperationsTotal.WithLabelValues("create", "rejected")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.RecordUserOperation("delete", "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `accounts_user_operations_total{operation="delete",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.RecordUserOperation("find", "success")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.userOperationsTotal.WithLabelValues("find", "success")))
}
