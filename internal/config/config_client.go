package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Chiropractor is the clinic tag used for new leads and the identity.
	Chiropractor string
	// Version is reported in the client's user agent.
	Version string
}

// ClientAdapter holds settings of the client's HTTP transport.
type ClientAdapter struct {
	// ServerURL is the chiro-hub API base URL.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DBPath is the SQLite file of the local store.
	DBPath string
	// HostedDB is the hosted database the audit context is bound to.
	// Binding is skipped when it is not configured.
	HostedDB DB
	// Leads is the optional shared lead aggregation store.
	Leads Leads
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Audit   Audit
	Log     Log
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name; the positional arguments left after flag
// parsing are returned as the command to run.
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Chiropractor: cfg.Client.Chiropractor,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath:   cfg.Client.DBPath,
			HostedDB: cfg.Storage.DB,
			Leads:    cfg.Storage.Leads,
		},
		Audit:   cfg.Audit,
		Log:     cfg.Log,
		LogFile: cfg.Client.LogFile,
	}

	return clientCfg, rest, clientCfg.validate()
}
