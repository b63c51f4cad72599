package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
)

// clearTimeout bounds clearing the audit context when a connection is
// handed back.
const clearTimeout = 2 * time.Second

type auditRepository struct {
	connector *Connector
	logger    *logger.Logger
}

// NewAuditRepository returns an [AuditRepository] that calls the
// set_audit_context database procedure through connector.
func NewAuditRepository(connector *Connector, logger *logger.Logger) AuditRepository {
	return &auditRepository{
		connector: connector,
		logger:    logger,
	}
}

// Configured reports whether the hosted database settings are present.
func (r *auditRepository) Configured() bool {
	return r.connector != nil && r.connector.Settings().IsConfigured()
}

// Bind pins a connection and runs set_audit_context on it. The settings
// are session-level, so only statements sent through the returned
// [AuditedConn] see them.
func (r *auditRepository) Bind(ctx context.Context, auditCtx models.AuditContext) (AuditedConn, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSetAuditContextQuery(auditCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Bind").Msg("error acquiring connection")
		return nil, db.wrapDBError(err, ErrExecutingStatement)
	}

	if _, err = conn.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*auditRepository.Bind").Msg("error binding audit context")
		_ = conn.Close()
		return nil, db.wrapDBError(err, ErrExecutingStatement)
	}

	log.Debug().
		Str("func", "*auditRepository.Bind").
		Str("session_id", auditCtx.SessionID).
		Str("login", auditCtx.Login).
		Msg("audit context bound")
	return &auditedConn{conn: conn, db: db, logger: r.logger}, nil
}

type auditedConn struct {
	conn   *sql.Conn
	db     *DB
	logger *logger.Logger
}

func (c *auditedConn) TouchLastSeen(ctx context.Context, login string, at time.Time) (int64, error) {
	query, args, err := buildTouchLastSeenQuery(login, at)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditedConn.TouchLastSeen").Msg("error updating last seen")
		return 0, c.db.wrapDBError(err, ErrExecutingStatement)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return updated, nil
}

// Close clears the audit context before the connection goes back to the
// pool. When clearing fails the connection is discarded instead, so that
// no other caller inherits the attribution.
func (c *auditedConn) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()

	query, args, err := buildClearAuditContextQuery()
	if err == nil {
		_, err = c.conn.ExecContext(ctx, query, args...)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*auditedConn.Close").Msg("error clearing audit context, discarding connection")
		// ErrBadConn makes database/sql close the connection instead of
		// reusing it.
		_ = c.conn.Raw(func(any) error { return driver.ErrBadConn })
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c.conn.Close()
}
