package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. The database
// watchdog is left out when its interval is not positive.
func NewWorkers(connector DBConnector, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.DBPingInterval > 0 {
		w.workers = append(w.workers, NewDBWatchdog(connector, cfg.DBPingInterval, logger))
	}
	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
