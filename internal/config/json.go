package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		GoogleClientID    string `json:"google_client_id"`
		GoogleRedirectURI string `json:"google_redirect_uri"`
		Version           string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string `json:"dsn"`
			ServiceRoleKey string `json:"service_role_key"`
			Migrate        bool   `json:"migrate"`
		} `json:"db,omitempty"`

		Leads struct {
			RedisURL string `json:"redis_url"`
			Key      string `json:"key"`
		} `json:"leads,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		DBPingInterval Duration `json:"db_ping_interval"`
	} `json:"workers,omitempty"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		DBPath         string   `json:"db_path"`
		Chiropractor   string   `json:"chiropractor"`
		RequestTimeout Duration `json:"request_timeout"`
		LogFile        string   `json:"log_file"`
	} `json:"client,omitempty"`

	Audit struct {
		IPLookupURL string   `json:"ip_lookup_url"`
		Timeout     Duration `json:"timeout"`
	} `json:"audit,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			GoogleClientID:    jsonCfg.App.GoogleClientID,
			GoogleRedirectURI: jsonCfg.App.GoogleRedirectURI,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				ServiceRoleKey: jsonCfg.Storage.DB.ServiceRoleKey,
				Migrate:        jsonCfg.Storage.DB.Migrate,
			},
			Leads: Leads{
				RedisURL: jsonCfg.Storage.Leads.RedisURL,
				Key:      jsonCfg.Storage.Leads.Key,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			DBPingInterval: time.Duration(jsonCfg.Workers.DBPingInterval),
		},
		Client: Client{
			ServerURL:      jsonCfg.Client.ServerURL,
			DBPath:         jsonCfg.Client.DBPath,
			Chiropractor:   jsonCfg.Client.Chiropractor,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			LogFile:        jsonCfg.Client.LogFile,
		},
		Audit: Audit{
			IPLookupURL: jsonCfg.Audit.IPLookupURL,
			Timeout:     time.Duration(jsonCfg.Audit.Timeout),
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
