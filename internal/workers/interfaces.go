// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/chiro-hub/internal/config"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// DBConnector is the part of the shared database handle the watchdog needs.
// It is implemented by *store.Connector.
type DBConnector interface {
	Ping(ctx context.Context) error
	Settings() config.DB
	Reset(cfg config.DB) error
}
