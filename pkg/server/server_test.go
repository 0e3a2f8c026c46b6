package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint tests the liveness endpoint.
//
// It verifies:
//   - Status 200
//   - Static {"status":"ok"} body
func TestHealthEndpoint(t *testing.T) {
	e := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestEchoEndpoint tests the echo endpoint round trip.
func TestEchoEndpoint(t *testing.T) {
	e := New()

	body := strings.NewReader(`{"message":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"hello world"}`, rec.Body.String())
}

// TestEchoEndpointInvalidBody tests rejection of an unreadable body.
func TestEchoEndpointInvalidBody(t *testing.T) {
	e := New()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestEchoEndpointEmptyMessage tests that an empty message echoes back.
func TestEchoEndpointEmptyMessage(t *testing.T) {
	e := New()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":""}`, rec.Body.String())
}

// TestHealthMethodNotAllowed tests that POST to /health is rejected.
func TestHealthMethodNotAllowed(t *testing.T) {
	e := New()

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
