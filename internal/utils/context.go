// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, UUID generation and other common
// operations.
package utils

import (
	"context"

	"github.com/MKhiriev/chiro-hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuditContextCtxKey is the key under which the audit context bound for the
// current operation is stored.
var AuditContextCtxKey = contextKey("auditContext")

// WithAuditContext returns a copy of ctx carrying auditCtx.
func WithAuditContext(ctx context.Context, auditCtx models.AuditContext) context.Context {
	return context.WithValue(ctx, AuditContextCtxKey, auditCtx)
}

// GetAuditContextFromContext retrieves the audit context bound for the
// current operation.
//
// Returns the context and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: no audit context was bound, e.g. nobody is signed in
func GetAuditContextFromContext(ctx context.Context) (models.AuditContext, bool) {
	auditCtx, ok := ctx.Value(AuditContextCtxKey).(models.AuditContext)
	return auditCtx, ok
}
