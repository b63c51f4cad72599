package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
)

type connectFunc func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error)

// Connector owns the process-wide PostgreSQL handle. The handle is opened
// on first use and shared by every request afterwards; [Connector.Reset]
// drops it so the next call reconnects.
type Connector struct {
	mu      sync.RWMutex
	cfg     config.DB
	db      *DB
	connect connectFunc
	logger  *logger.Logger
}

// NewConnector returns a Connector for cfg. No connection is made until
// [Connector.DB] is called.
func NewConnector(cfg config.DB, log *logger.Logger) *Connector {
	return &Connector{
		cfg:     cfg,
		connect: NewConnectPostgres,
		logger:  log,
	}
}

// Settings returns the current connection settings.
func (c *Connector) Settings() config.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cfg
}

// DB returns the shared handle, opening it if needed.
//
// Errors:
//   - [ErrDBNotConfigured] when the URL or the service-role key is missing;
//   - [ErrDBUnreachable] when opening the handle fails.
func (c *Connector) DB(ctx context.Context) (*DB, error) {
	c.mu.RLock()
	db, cfg := c.db, c.cfg
	c.mu.RUnlock()

	if !cfg.IsConfigured() {
		return nil, ErrDBNotConfigured
	}
	if db != nil {
		return db, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.connect(ctx, c.cfg, c.logger)
	if err != nil {
		if errors.Is(err, ErrDBNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDBUnreachable, err)
	}
	c.db = db

	return db, nil
}

// Ping checks the shared handle. It opens the handle when none exists yet.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.DB(ctx)
	if err != nil {
		return err
	}

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDBUnreachable, err)
	}

	return nil
}

// Reset closes the current handle and replaces the settings with cfg.
// The next [Connector.DB] call opens a fresh handle.
func (c *Connector) Reset(cfg config.DB) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.db != nil {
		err = c.db.Close()
		c.db = nil
	}
	c.cfg = cfg

	c.logger.Info().Str("func", "*Connector.Reset").Msg("database handle reset")
	return err
}

// Close releases the shared handle, if any.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}
