package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/chiro-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the hosted database.
type UserRepository interface {
	// CreateUser inserts user unless its login or email is taken, in which
	// case it returns [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// TouchLogin stamps last_login_at and last_seen_at of the user with
	// the given login and returns the number of updated rows.
	TouchLogin(ctx context.Context, login string, at time.Time) (int64, error)
	// ProbeUsers checks that the users table is readable.
	ProbeUsers(ctx context.Context) error
}

// AuditRepository binds audit metadata to a hosted database connection.
type AuditRepository interface {
	Configured() bool
	// Bind takes one connection out of the pool and binds auditCtx to it.
	// The caller owns the returned connection and must Close it.
	Bind(ctx context.Context, auditCtx models.AuditContext) (AuditedConn, error)
}

// AuditedConn is a pinned hosted database connection carrying an audit
// context. Changes made through it are written to audit_log with that
// context.
type AuditedConn interface {
	// TouchLastSeen stamps last_seen_at of the user with the given login and
	// returns the number of updated rows.
	TouchLastSeen(ctx context.Context, login string, at time.Time) (int64, error)
	// Close clears the audit context and hands the connection back to the
	// pool.
	Close() error
}

// LeadStore is the shared lead aggregation store.
type LeadStore interface {
	Configured() bool
	AppendLead(ctx context.Context, lead json.RawMessage) error
	ListLeads(ctx context.Context) ([]models.Lead, error)
	Close() error
}

// ErrorClassificator tells database unavailability apart from statement
// failures.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
