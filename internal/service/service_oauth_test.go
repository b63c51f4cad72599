package service

import (
	"context"
	"crypto/tls"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthService_AuthURL(t *testing.T) {
	svc := NewOAuthService(config.App{GoogleClientID: "client-123.apps.googleusercontent.com"}, logger.Nop())

	got, err := svc.AuthURL(context.Background(), "https://clinic.example/api/auth/google/callback", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultOAuthState, got.State)
	assert.Equal(t, GoogleCalendarScope, got.Scope)
	assert.Equal(t, "client-123.apps.googleusercontent.com", got.ClientID)

	u, err := url.Parse(got.AuthURL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "client-123.apps.googleusercontent.com", q.Get("client_id"))
	assert.Equal(t, "https://clinic.example/api/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, GoogleCalendarScope, q.Get("scope"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "default", q.Get("state"))
}

func TestOAuthService_AuthURL_CustomState(t *testing.T) {
	svc := NewOAuthService(config.App{GoogleClientID: "id"}, logger.Nop())

	got, err := svc.AuthURL(context.Background(), "http://localhost/cb", "clinic-42")
	require.NoError(t, err)

	u, err := url.Parse(got.AuthURL)
	require.NoError(t, err)
	assert.Equal(t, "clinic-42", u.Query().Get("state"))
	assert.Equal(t, "clinic-42", got.State)
}

func TestOAuthService_AuthURL_MissingClientID(t *testing.T) {
	svc := NewOAuthService(config.App{GoogleClientID: "  "}, logger.Nop())

	_, err := svc.AuthURL(context.Background(), "http://localhost/cb", "")

	assert.ErrorIs(t, err, ErrOAuthClientIDMissing)
}

func TestOAuthService_RedirectURI(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		host       string
		headers    map[string]string
		tls        bool
		want       string
	}{
		{
			name:       "configured override",
			configured: "https://app.example/cb",
			host:       "ignored.local",
			headers:    map[string]string{"X-Forwarded-Host": "also.ignored"},
			want:       "https://app.example/cb",
		},
		{
			name: "forwarded headers",
			host: "internal:8080",
			headers: map[string]string{
				"X-Forwarded-Proto": "https",
				"X-Forwarded-Host":  "clinic.example",
			},
			want: "https://clinic.example/api/auth/google/callback",
		},
		{
			name: "chained proxies take first value",
			host: "internal:8080",
			headers: map[string]string{
				"X-Forwarded-Proto": "https, http",
				"X-Forwarded-Host":  "clinic.example, lb.internal",
			},
			want: "https://clinic.example/api/auth/google/callback",
		},
		{
			name: "plain request",
			host: "localhost:8080",
			want: "http://localhost:8080/api/auth/google/callback",
		},
		{
			name: "tls request",
			host: "clinic.example",
			tls:  true,
			want: "https://clinic.example/api/auth/google/callback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOAuthService(config.App{GoogleClientID: "id", GoogleRedirectURI: tt.configured}, logger.Nop())

			r := httptest.NewRequest("GET", "/api/auth/google", nil)
			r.Host = tt.host
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			} else {
				r.TLS = nil
			}

			assert.Equal(t, tt.want, svc.RedirectURI(r))
		})
	}
}
