package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a database failure means the database
// itself could not be used.
type ErrorClassification int

const (
	// Failed is a statement-level failure: the database answered and
	// refused or broke the statement.
	Failed ErrorClassification = iota

	// Unavailable means the database could not be reached or is not
	// accepting work. Handlers answer these with 503.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports connect errors, dropped connections and the server-side
// codes of [ClassifyPgError] as [Unavailable]. Everything else, nil
// included, is [Failed].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Failed
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Failed
}

// ClassifyPgError maps SQLSTATE class 08 (connection exception), class 53
// (insufficient resources) and the shutdown codes of class 57 to
// [Unavailable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code):
		return Unavailable
	}

	switch pgErr.Code {
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return Unavailable
	}

	return Failed
}
