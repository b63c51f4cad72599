package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
)

// Storages groups the server-side storage dependencies.
type Storages struct {
	// Connector is the lazy process-wide database handle.
	Connector      *Connector
	UserRepository UserRepository
	LeadStore      LeadStore
}

// NewStorages wires the server storages. No database connection is opened
// here; the first request that needs one opens it.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	connector := NewConnector(cfg.DB, logger)

	leadStore, err := NewLeadStore(cfg.Leads, logger)
	if err != nil {
		return nil, fmt.Errorf("lead store error: %w", err)
	}

	return &Storages{
		Connector:      connector,
		UserRepository: NewUserRepository(connector, logger),
		LeadStore:      leadStore,
	}, nil
}

// Close releases the database handle and the lead store client.
func (s *Storages) Close() error {
	return errors.Join(s.Connector.Close(), s.LeadStore.Close())
}
