package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/chiro-hub/models"
)

// UserService handles account registration and login stamps.
type UserService interface {
	// Register creates an account and returns its public view.
	Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error)
	// TouchLogin records a login of the given user. Unknown logins are
	// not an error.
	TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
}

// DiagnosticsService reports whether the database is usable.
type DiagnosticsService interface {
	// Check never fails; problems are described in the returned value.
	Check(ctx context.Context) models.Diagnostics
}

// OAuthService builds the Google Calendar authorization URL.
type OAuthService interface {
	// RedirectURI returns the configured redirect URI, or one derived
	// from the forwarding headers of r.
	RedirectURI(r *http.Request) string
	// AuthURL builds the consent URL for redirectURI and state.
	AuthURL(ctx context.Context, redirectURI, state string) (models.OAuthDebug, error)
}

// LeadService relays leads between advertising integrations and clinics.
type LeadService interface {
	// ListLeads returns the stored leads passing q.
	ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error)
	// ReceiveLead acknowledges raw and echoes it back. Nothing is stored.
	ReceiveLead(ctx context.Context, raw json.RawMessage) (models.LeadAck, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// LeadServiceWrapper defines middleware composition for LeadService.
type LeadServiceWrapper interface {
	Wrap(LeadService) LeadService
}
