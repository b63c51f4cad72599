// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] can start the
// server.
//
// The database settings are deliberately not required: an unconfigured
// database is reported per request (HTTP 503) and by the diagnostics
// endpoint instead of preventing startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN != "" && !strings.Contains(cfg.Storage.DB.DSN, "://") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DBPath == "" || strings.Contains(cfg.Storage.DBPath, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Audit.Timeout <= 0 {
		return ErrInvalidAuditConfigs
	}

	return nil
}
