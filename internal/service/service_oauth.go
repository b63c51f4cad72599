package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	// GoogleCalendarScope grants full access to the clinic's calendars.
	GoogleCalendarScope = "https://www.googleapis.com/auth/calendar"

	// OAuthCallbackPath is appended to the derived origin when no redirect
	// URI is configured.
	OAuthCallbackPath = "/api/auth/google/callback"

	// DefaultOAuthState is used when the caller passes no state.
	DefaultOAuthState = "default"
)

type oauthService struct {
	clientID    string
	redirectURI string
	logger      *logger.Logger
}

func NewOAuthService(cfg config.App, logger *logger.Logger) OAuthService {
	return &oauthService{
		clientID:    strings.TrimSpace(cfg.GoogleClientID),
		redirectURI: strings.TrimSpace(cfg.GoogleRedirectURI),
		logger:      logger,
	}
}

// RedirectURI prefers the configured URI. Otherwise it rebuilds the public
// origin from X-Forwarded-Proto and X-Forwarded-Host, falling back to the
// request's own scheme and Host.
func (s *oauthService) RedirectURI(r *http.Request) string {
	if s.redirectURI != "" {
		return s.redirectURI
	}

	proto := firstForwarded(r.Header.Get("X-Forwarded-Proto"))
	if proto == "" {
		proto = "http"
		if r.TLS != nil {
			proto = "https"
		}
	}

	host := firstForwarded(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}

	return proto + "://" + host + OAuthCallbackPath
}

// AuthURL builds an offline-access consent URL. The consent prompt is
// forced so that a refresh token is issued on every grant.
func (s *oauthService) AuthURL(ctx context.Context, redirectURI, state string) (models.OAuthDebug, error) {
	if s.clientID == "" {
		logger.FromContext(ctx).Error().Msg("google oauth client id is not configured")
		return models.OAuthDebug{}, ErrOAuthClientIDMissing
	}
	if state == "" {
		state = DefaultOAuthState
	}

	oauthCfg := &oauth2.Config{
		ClientID:    s.clientID,
		Endpoint:    endpoints.Google,
		RedirectURL: redirectURI,
		Scopes:      []string{GoogleCalendarScope},
	}

	authURL := oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)

	return models.OAuthDebug{
		AuthURL:     authURL,
		ClientID:    s.clientID,
		RedirectURI: redirectURI,
		Scope:       GoogleCalendarScope,
		State:       state,
	}, nil
}

// firstForwarded returns the first value of a comma-separated forwarding
// header, as set by chained proxies.
func firstForwarded(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
