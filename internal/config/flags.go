package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers all configuration flags on fs and parses args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health endpoint address in format [host]:[port]
//	-d database DSN
//	-service-role-key database service-role credential
//	-migrate run database migrations on connect
//	-redis-url lead aggregation store URL
//	-google-client-id OAuth client id
//	-google-redirect-uri OAuth redirect URI override
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-db-ping-interval connection watchdog interval
//	-server-url chiro-hub API base URL (client)
//	-db-path local store file (client)
//	-chiropractor clinic tag (client)
//	-log-level zerolog level
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, serviceRoleKey string
	var migrate bool
	var redisURL string
	var googleClientID, googleRedirectURI string
	var requestTimeout, dbPingInterval time.Duration
	var serverURL, dbPath, chiropractor string
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&serviceRoleKey, "service-role-key", "", "Database service-role credential")
	fs.BoolVar(&migrate, "migrate", false, "Run database migrations on connect")
	fs.StringVar(&redisURL, "redis-url", "", "Lead aggregation store URL")
	fs.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id")
	fs.StringVar(&googleRedirectURI, "google-redirect-uri", "", "Google OAuth redirect URI override")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&dbPingInterval, "db-ping-interval", 0, "Database watchdog interval (e.g., 1m)")
	fs.StringVar(&serverURL, "server-url", "", "chiro-hub API base URL")
	fs.StringVar(&dbPath, "db-path", "", "Client local store file")
	fs.StringVar(&chiropractor, "chiropractor", "", "Clinic tag")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			GoogleClientID:    googleClientID,
			GoogleRedirectURI: googleRedirectURI,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				ServiceRoleKey: serviceRoleKey,
				Migrate:        migrate,
			},
			Leads: Leads{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			DBPingInterval: dbPingInterval,
		},
		Client: Client{
			ServerURL:      serverURL,
			DBPath:         dbPath,
			Chiropractor:   chiropractor,
			RequestTimeout: requestTimeout,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
