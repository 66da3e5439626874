// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package config

import (
	"fmt"
	"regexp"
	"strings"
)

// StructuredConfig is the top-level configuration container for the proxy.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables and command-line flags.
//
// Struct tags:
//   - env        — environment variable name for the field (caarlos0/env).
//   - envDefault — value applied when the variable is unset.
type StructuredConfig struct {
	// Proxy holds routing settings: the upstream host, the websocket
	// switch, and the list of hosts allowed to reach internal endpoints.
	Proxy Proxy

	// App holds application-level settings such as the token signing
	// secret.
	App App

	// Cache holds the Redis session cache connection settings.
	Cache Cache

	// Storage holds the PostgreSQL user store connection settings.
	Storage Storage

	// Server holds the inbound listener settings.
	Server Server
}

// Proxy holds routing configuration for the pass-through surface.
type Proxy struct {
	// ProxiedHost is the upstream "host:port" every non-auth request is
	// forwarded to. The proxy refuses to start when it is empty.
	// Env: PROXIED_HOST
	ProxiedHost string `env:"PROXIED_HOST"`

	// WebsocketMode switches the catch-all route from buffered HTTP
	// relaying to websocket tunneling.
	// Env: WEBSOCKET_MODE
	WebsocketMode bool `env:"WEBSOCKET_MODE"`

	// AllowedHosts is the list of host patterns (regular expressions,
	// matched against the request Host with any port stripped) that may
	// call internal-only endpoints. Requests from any other host get 404.
	// Env: ALLOWED_HOSTS (comma-separated)
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`
}

// App holds application-level configuration values.
type App struct {
	// SigningSecret is the secret key used to sign and verify access
	// tokens. An empty value still works but is loudly warned about at
	// startup. Must be kept confidential.
	// Env: SIGNING_SECRET
	SigningSecret string `env:"SIGNING_SECRET"`
}

// Cache holds connection settings for the Redis session cache.
type Cache struct {
	// RedisHost is the Redis server host name or IP.
	// Env: REDIS_HOST
	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`

	// RedisPort is the Redis server port.
	// Env: REDIS_PORT
	RedisPort int `env:"REDIS_PORT" envDefault:"6379"`
}

// Storage holds connection settings for the PostgreSQL user store.
type Storage struct {
	// Host is the PostgreSQL server host name or IP.
	// Env: POSTGRES_HOST
	Host string `env:"POSTGRES_HOST" envDefault:"localhost"`

	// Port is the PostgreSQL server port.
	// Env: POSTGRES_PORT
	Port int `env:"POSTGRES_PORT" envDefault:"5432"`

	// Database is the database name.
	// Env: POSTGRES_DB
	Database string `env:"POSTGRES_DB" envDefault:"postgres"`

	// User is the database role used to connect.
	// Env: POSTGRES_USER
	User string `env:"POSTGRES_USER" envDefault:"postgres"`

	// Password is the database role password.
	// Env: POSTGRES_PASSWORD
	Password string `env:"POSTGRES_PASSWORD"`
}

// Server holds network settings for the inbound listener.
type Server struct {
	// HTTPAddress is the TCP address the proxy listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:":8888"`
}

// GetStructuredConfig loads, merges, and validates the proxy configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}

// DSN assembles the PostgreSQL connection string from the discrete
// POSTGRES_* settings.
func (cfg *StructuredConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Storage.User,
		cfg.Storage.Password,
		cfg.Storage.Host,
		cfg.Storage.Port,
		cfg.Storage.Database,
	)
}

// RedisAddr returns the "host:port" address of the session cache.
func (cfg *StructuredConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Cache.RedisHost, cfg.Cache.RedisPort)
}

// AllowedHostPattern compiles the ALLOWED_HOSTS entries into a single
// anchored alternation so the internal-only middleware can match the whole
// request host in one pass. Returns nil when no hosts are configured, in
// which case no host is allowed.
func (cfg *StructuredConfig) AllowedHostPattern() (*regexp.Regexp, error) {
	patterns := make([]string, 0, len(cfg.Proxy.AllowedHosts))
	for _, p := range cfg.Proxy.AllowedHosts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}

	if len(patterns) == 0 {
		return nil, nil
	}

	pattern, err := regexp.Compile(`\A(?:` + strings.Join(patterns, "|") + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("error compiling allowed hosts pattern: %w", err)
	}

	return pattern, nil
}
