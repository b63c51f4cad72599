package store

import "context"

type auditedConnKey struct{}

// WithAuditedConn returns a copy of ctx carrying conn.
func WithAuditedConn(ctx context.Context, conn AuditedConn) context.Context {
	return context.WithValue(ctx, auditedConnKey{}, conn)
}

// AuditedConnFromContext returns the connection bound by the audit helper,
// if any.
func AuditedConnFromContext(ctx context.Context) (AuditedConn, bool) {
	conn, ok := ctx.Value(auditedConnKey{}).(AuditedConn)
	return conn, ok && conn != nil
}
