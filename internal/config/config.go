// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// quote-sync server and client. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database, the session store and the client
	// cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the inbound request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the synchronization engine timings.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values controlling guest sessions.
type App struct {
	// TokenSignKey signs and verifies guest session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionTTL is how long a guest session (cookie, token and Redis
	// record) stays valid after it was last ensured.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups every persistence backend.
type Storage struct {
	// DB is the server's PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Redis is the server's session store.
	Redis Redis `envPrefix:"REDIS_"`

	// Cache is the client's local SQLite cache.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the session store.
type Redis struct {
	// URL is a redis:// URL understood by redis.ParseURL.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Cache holds the client cache location.
type Cache struct {
	// DSN is the SQLite database file path (":memory:" for a throwaway cache).
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Server holds listen and timeout settings for the inbound transports.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC health service listens on.
	// Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the server base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the synchronization engine timings. Zero values fall back to
// the engine defaults.
type Sync struct {
	// Debounce is the quiet period after the last edit before a flush.
	// Env: SYNC_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// NotificationWindow suppresses repeated notifications of one class.
	// Env: SYNC_NOTIFICATION_WINDOW
	NotificationWindow time.Duration `env:"NOTIFICATION_WINDOW"`

	// RevalidateInterval is how often the client re-checks the server copy
	// while idle.
	// Env: SYNC_REVALIDATE_INTERVAL
	RevalidateInterval time.Duration `env:"REVALIDATE_INTERVAL"`

	// UnloadTimeout bounds the final flush on exit.
	// Env: SYNC_UNLOAD_TIMEOUT
	UnloadTimeout time.Duration `env:"UNLOAD_TIMEOUT"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file path. Empty puts "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges and validates the configuration from
// all sources in priority order (last non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
