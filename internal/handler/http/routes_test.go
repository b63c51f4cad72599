package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestRouter(newTestServices())

	for _, path := range []string{"/api/register", "/api/user-login", "/api/register-check", "/api/leads"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "https://landing.example.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		})
	}
}

func TestInit_PlainOptionsReturns200(t *testing.T) {
	router := newTestRouter(newTestServices())

	req := httptest.NewRequest(http.MethodOptions, "/api/leads", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestInit_SimpleRequestCarriesCORSHeaders(t *testing.T) {
	router := newTestRouter(newTestServices())

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Origin", "https://crm.example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(newTestServices())

	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodPost, "/api/auth/google", "GET"},
		{http.MethodGet, "/api/register", "OPTIONS, POST"},
		{http.MethodPut, "/api/leads", "GET, OPTIONS, POST"},
		{http.MethodDelete, "/api/version/", "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"method not allowed"}`, rr.Body.String())
		})
	}
}

func TestInit_TraceIDHeaderOnEveryResponse(t *testing.T) {
	router := newTestRouter(newTestServices())

	for _, path := range []string{"/api/version/", "/api/nonexistent"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), path)
	}
}
