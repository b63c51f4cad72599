package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/chiro-hub/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository caches the client's session identifier.
type LocalSessionRepository interface {
	// GetSessionID returns the cached id, or "" when none is cached.
	GetSessionID(ctx context.Context) (string, error)
	SaveSessionID(ctx context.Context, sessionID string) error
	ClearSession(ctx context.Context) error
}

// LocalIdentityRepository caches the identity of the signed-in user.
type LocalIdentityRepository interface {
	// GetIdentity returns the cached identity, or an empty one.
	GetIdentity(ctx context.Context) (models.Identity, error)
	SaveIdentity(ctx context.Context, identity models.Identity) error
	ClearIdentity(ctx context.Context) error
}

// LocalLeadRepository keeps leads created on this device.
type LocalLeadRepository interface {
	SaveLead(ctx context.Context, lead json.RawMessage) error
	// GetLeads returns saved leads in insertion order, all of them when
	// chiropractor is empty.
	GetLeads(ctx context.Context, chiropractor string) ([]models.Lead, error)
}
