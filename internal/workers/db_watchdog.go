// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
)

// maxPingTimeout caps a single watchdog ping.
const maxPingTimeout = 5 * time.Second

// DBWatchdog pings the shared database handle on a fixed interval and
// resets it after a failed ping. The next request then opens a new handle.
type DBWatchdog struct {
	connector DBConnector
	interval  time.Duration
	logger    *logger.Logger
}

func NewDBWatchdog(connector DBConnector, interval time.Duration, logger *logger.Logger) *DBWatchdog {
	return &DBWatchdog{
		connector: connector,
		interval:  interval,
		logger:    logger,
	}
}

func (w *DBWatchdog) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("database watchdog started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("database watchdog stopped")
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check pings the handle once and resets it on failure. It reports whether
// the database answered. An unconfigured database is not reset.
func (w *DBWatchdog) Check(ctx context.Context) bool {
	timeout := min(w.interval/2, maxPingTimeout)
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := w.connector.Ping(pingCtx)
	switch {
	case err == nil:
		return true
	case errors.Is(err, store.ErrDBNotConfigured):
		w.logger.Debug().Msg("database watchdog: database is not configured")
		return false
	}

	w.logger.Warn().Err(err).Msg("database watchdog: ping failed, resetting handle")
	if resetErr := w.connector.Reset(w.connector.Settings()); resetErr != nil {
		w.logger.Error().Err(resetErr).Msg("database watchdog: closing broken handle")
	}
	return false
}
