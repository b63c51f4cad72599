package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens and pings a PostgreSQL handle for cfg.
// The service-role key is used as the password unless the URL carries one.
// Migrations are applied when cfg.Migrate is set.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if !cfg.IsConfigured() {
		return nil, ErrDBNotConfigured
	}

	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database url")
		return nil, fmt.Errorf("error parsing database url: %w", err)
	}
	if connConfig.Password == "" {
		connConfig.Password = cfg.ServiceRoleKey
	}

	// establish connection
	conn := stdlib.OpenDB(*connConfig)

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if cfg.Migrate {
		if err = db.Migrate(migrations.Postgres); err != nil {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("error migrating database")
			_ = conn.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// wrapDBError marks connection-level failures with [ErrDBUnreachable] so the
// transport layer can answer 503 instead of 500.
func (db *DB) wrapDBError(err error, sentinel error) error {
	if errors.Is(err, sql.ErrConnDone) ||
		(db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unavailable) {
		return fmt.Errorf("%w: %w", ErrDBUnreachable, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}
