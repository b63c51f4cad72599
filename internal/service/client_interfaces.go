package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/chiro-hub/internal/audit"
	"github.com/MKhiriev/chiro-hub/models"
)

// ClientAuthService defines the client-side contract for registration and
// sign-in. The signed-in identity is cached locally so that later mutating
// calls can be attributed to it.
type ClientAuthService interface {
	// Register creates the account on the server and caches the returned
	// identity. The audit session is restarted for the new identity.
	Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error)

	// Login stamps the login on the server and caches the identity. A cached
	// identity with the same login keeps its user id and email.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Logout clears the cached identity and the audit session.
	Logout(ctx context.Context) error

	// WhoAmI returns the cached identity or [ErrNotSignedIn].
	WhoAmI(ctx context.Context) (models.Identity, error)
}

// ClientLeadService defines the client-side contract for leads.
type ClientLeadService interface {
	// Add sends raw to the relay and stores the echoed lead locally and, when
	// configured, in the shared aggregation store. Storing is audited.
	// Missing chiropractor and createdAt fields are filled in first.
	Add(ctx context.Context, raw json.RawMessage) (models.LeadAck, error)

	// ListRemote lists the leads held by the shared aggregation store.
	ListRemote(ctx context.Context, q models.LeadQuery) (models.LeadList, error)

	// ListLocal lists the leads saved on this device. An empty chiropractor
	// lists all of them.
	ListLocal(ctx context.Context, chiropractor string) ([]models.Lead, error)
}

// ClientStatusService reports the state of the server.
type ClientStatusService interface {
	Status(ctx context.Context) (models.ServerStatus, error)
}

// AuditRunner runs a mutating operation with audit attribution.
// [audit.Helper] implements it.
type AuditRunner interface {
	Run(ctx context.Context, op audit.Operation) error
}
