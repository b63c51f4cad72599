// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for chiro-hub.
// It aggregates the sub-configurations of the server and of the client and
// is populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: OAuth client data and version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the hosted relational database and
	// the shared lead aggregation store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the command-line client.
	Client Client `envPrefix:"CLIENT_"`

	// Audit holds settings of the client's audit-context helper.
	Audit Audit `envPrefix:"AUDIT_"`

	// Log holds logging settings shared by both binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// GoogleClientID is the OAuth client id used to build the Google
	// Calendar authorization URL.
	// Env: APP_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// GoogleRedirectURI overrides the redirect URI that is otherwise derived
	// from the inbound request's forwarding headers.
	// Env: APP_GOOGLE_REDIRECT_URI
	GoogleRedirectURI string `env:"GOOGLE_REDIRECT_URI"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the hosted relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Leads holds the shared lead aggregation store settings.
	Leads Leads `envPrefix:"LEADS_"`
}

// DB holds connection settings for the hosted PostgreSQL database.
type DB struct {
	// DSN is the PostgreSQL connection URL
	// (e.g. "postgres://service_role@db.example.com:5432/postgres").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ServiceRoleKey is the service-role credential. It is used as the
	// connection password and grants bypass of row-level policies.
	// Env: STORAGE_DB_SERVICE_ROLE_KEY
	ServiceRoleKey string `env:"SERVICE_ROLE_KEY"`

	// Migrate runs the embedded goose migrations right after connecting.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// IsConfigured reports whether both the connection URL and the
// service-role credential are present.
func (d DB) IsConfigured() bool {
	return d.DSN != "" && d.ServiceRoleKey != ""
}

// Leads holds settings of the Redis-backed lead aggregation store.
type Leads struct {
	// RedisURL enables the store when non-empty
	// (e.g. "redis://localhost:6379/0").
	// Env: STORAGE_LEADS_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// Key is the Redis list holding the aggregated leads.
	// Env: STORAGE_LEADS_KEY
	Key string `env:"KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// The gRPC server is disabled when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DBPingInterval is how often the connection watchdog pings the
	// database handle. Zero disables the watchdog.
	// Env: WORKERS_DB_PING_INTERVAL
	DBPingInterval time.Duration `env:"DB_PING_INTERVAL"`
}

// Client holds settings of the command-line client.
type Client struct {
	// ServerURL is the base URL of the chiro-hub HTTP API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// DBPath is the SQLite file of the client's local store.
	// Env: CLIENT_DB_PATH
	DBPath string `env:"DB_PATH"`

	// Chiropractor is the clinic tag attached to the cached identity and
	// to leads created by this client.
	// Env: CLIENT_CHIROPRACTOR
	Chiropractor string `env:"CHIROPRACTOR"`

	// RequestTimeout bounds every call to the HTTP API.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile receives the client's logs.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Audit holds settings of the audit-context helper.
type Audit struct {
	// IPLookupURL returns the caller's public IP as {"ip": "..."}.
	// Env: AUDIT_IP_LOOKUP_URL
	IPLookupURL string `env:"IP_LOOKUP_URL"`

	// Timeout bounds the whole enrichment step.
	// Env: AUDIT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Storage: Storage{
			Leads: Leads{Key: "leads"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			DBPingInterval: time.Minute,
		},
		Client: Client{
			ServerURL:      "http://localhost:8080",
			DBPath:         "chiro-client.db",
			RequestTimeout: 15 * time.Second,
		},
		Audit: Audit{
			IPLookupURL: "https://api.ipify.org?format=json",
			Timeout:     3 * time.Second,
		},
		Log: Log{Level: "debug"},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (does not override the process env)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, _, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
