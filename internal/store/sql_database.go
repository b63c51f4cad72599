package store

import (
	"database/sql"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/migrations"
)

// DB wraps a *sql.DB with the error classifier of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of dialect to db.
func (db *DB) Migrate(dialect migrations.Dialect) error {
	return migrations.Migrate(db.DB, dialect)
}
