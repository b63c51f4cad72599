package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/migrations"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Sessions caches the audit session identifier.
	Sessions LocalSessionRepository
	// Identities caches the identity of the signed-in user.
	Identities LocalIdentityRepository
	// Leads keeps leads created on this device.
	Leads LocalLeadRepository
	// Audit binds audit metadata on the hosted database.
	Audit AuditRepository
	// SharedLeads is the optional shared lead aggregation store.
	SharedLeads LeadStore

	db        *DB
	connector *Connector
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens the SQLite file at cfg.DBPath, creating it if it does not exist.
//  2. Runs pending SQLite migrations.
//  3. Prepares a lazy connector to the hosted database for audit binding.
//  4. Prepares the shared lead store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	leadStore, err := NewLeadStore(cfg.Leads, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	connector := NewConnector(cfg.HostedDB, logger)

	return &ClientStorages{
		Sessions:    NewLocalSessionRepository(db),
		Identities:  NewLocalIdentityRepository(db),
		Leads:       NewLocalLeadRepository(db),
		Audit:       NewAuditRepository(connector, logger),
		SharedLeads: leadStore,
		db:          db,
		connector:   connector,
	}, nil
}

// Close releases every connection held by the storages.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.SharedLeads != nil {
		errs = append(errs, s.SharedLeads.Close())
	}
	if s.connector != nil {
		errs = append(errs, s.connector.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
