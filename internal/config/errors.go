package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// listen address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a malformed DSN or an in-memory client database).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuditConfigs indicates a non-positive audit timeout.
	ErrInvalidAuditConfigs = errors.New("invalid audit configuration")
)
