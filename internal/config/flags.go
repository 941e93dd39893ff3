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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-adapter-address server address used by the client
//	-d database DSN
//	-redis redis URL
//	-cache cache database path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-session-ttl session lifetime (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debounce edit debounce (e.g., "600ms")
//	-notification-window notification throttle window (e.g., "3s")
//	-revalidate-interval idle revalidation interval (e.g., "1m")
//	-unload-timeout final flush bound on exit (e.g., "2s")
//	-log-file client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quote-sync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var adapterAddress string
	var databaseDSN, redisURL, cacheDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var sessionTTL, requestTimeout time.Duration
	var debounce, notificationWindow, revalidateInterval, unloadTimeout time.Duration
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis", "", "Redis URL")
	fs.StringVar(&cacheDSN, "cache", "", "Local cache database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&debounce, "debounce", 0, "Edit debounce (e.g., 600ms)")
	fs.DurationVar(&notificationWindow, "notification-window", 0, "Notification throttle window (e.g., 3s)")
	fs.DurationVar(&revalidateInterval, "revalidate-interval", 0, "Idle revalidation interval (e.g., 1m)")
	fs.DurationVar(&unloadTimeout, "unload-timeout", 0, "Final flush bound on exit (e.g., 2s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			SessionTTL:   sessionTTL,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{URL: redisURL},
			Cache: Cache{DSN: cacheDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Debounce:           debounce,
			NotificationWindow: notificationWindow,
			RevalidateInterval: revalidateInterval,
			UnloadTimeout:      unloadTimeout,
		},
		Log:          Log{File: logFile},
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
