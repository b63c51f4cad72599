package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error)
		wantCode   int
		wantBody   string
	}{
		{
			name:     "created",
			body:     `{"login":"alice","email":"alice@example.com","password":"secret"}`,
			wantCode: http.StatusCreated,
			wantBody: `{"id":"id-1","login":"alice","email":"alice@example.com"}`,
		},
		{
			name:     "malformed json",
			body:     `{"login":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: `{"login":"alice"}`,
			registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.RegisteredUser, error) {
				return models.RegisteredUser{}, fmt.Errorf("%w: email is required", service.ErrInvalidDataProvided)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate login",
			body: `{"login":"alice","email":"alice@example.com","password":"secret"}`,
			registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.RegisteredUser, error) {
				return models.RegisteredUser{}, store.ErrUserAlreadyExists
			},
			wantCode: http.StatusConflict,
			wantBody: `{"error":"user with this login or email already exists"}`,
		},
		{
			name: "database not configured",
			body: `{"login":"alice","email":"alice@example.com","password":"secret"}`,
			registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.RegisteredUser, error) {
				return models.RegisteredUser{}, store.ErrDBNotConfigured
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "insert failed",
			body: `{"login":"alice","email":"alice@example.com","password":"secret"}`,
			registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.RegisteredUser, error) {
				return models.RegisteredUser{}, fmt.Errorf("%w: connection reset", store.ErrExecutingStatement)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &mockUserService{registerFn: tt.registerFn}

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			newTestRouter(svcs).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantCode >= http.StatusBadRequest {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestRegister_BodyTooLarge(t *testing.T) {
	called := false
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.RegisteredUser, error) {
			called = true
			return models.RegisteredUser{}, nil
		},
	}

	body := `{"login":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTestRouter(svcs).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.False(t, called)
}

func TestUserLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		touchLoginFn func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
		wantCode     int
		wantBody     string
	}{
		{
			name:     "known user",
			body:     `{"login":"alice"}`,
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"login":"alice","updated":1}`,
		},
		{
			name: "unknown user is not an error",
			body: `{"login":"ghost"}`,
			touchLoginFn: func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
				return models.LoginResult{Success: true, Login: req.Login}, nil
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"login":"ghost","updated":0}`,
		},
		{
			name: "blank login",
			body: `{"login":"  "}`,
			touchLoginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResult, error) {
				return models.LoginResult{}, fmt.Errorf("%w: login is required", service.ErrInvalidDataProvided)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not json",
			body:     `login=alice`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "database unreachable",
			body: `{"login":"alice"}`,
			touchLoginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResult, error) {
				return models.LoginResult{}, store.ErrDBUnreachable
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &mockUserService{touchLoginFn: tt.touchLoginFn}

			req := httptest.NewRequest(http.MethodPost, "/api/user-login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			newTestRouter(svcs).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRegisterCheck_AlwaysOK(t *testing.T) {
	problem := "relation \"users\" does not exist"

	tests := []struct {
		name string
		diag models.Diagnostics
	}{
		{
			name: "healthy",
			diag: models.Diagnostics{OK: true, HasURL: true, HasServiceKey: true, TableOK: true, Message: "ok"},
		},
		{
			name: "not configured",
			diag: models.Diagnostics{Message: "configure the database"},
		},
		{
			name: "table missing",
			diag: models.Diagnostics{HasURL: true, HasServiceKey: true, Error: &problem, Message: "run migrations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DiagnosticsService = &mockDiagnosticsService{diag: tt.diag}

			req := httptest.NewRequest(http.MethodGet, "/api/register-check", nil)
			rr := httptest.NewRecorder()
			newTestRouter(svcs).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var got models.Diagnostics
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.diag, got)
		})
	}
}
