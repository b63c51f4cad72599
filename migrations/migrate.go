// Package migrations embeds the goose schema migrations of the server
// (PostgreSQL) and of the client's local store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set to apply.
type Dialect string

const (
	// Postgres applies the hosted database schema.
	Postgres Dialect = "postgres"
	// SQLite applies the client-side local store schema.
	SQLite Dialect = "sqlite3"
)

var errNilDB = errors.New("db is nil")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings db up to the latest schema version of the given dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect Dialect) (string, error) {
	switch dialect {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}
