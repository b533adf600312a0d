// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the server.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and rate limit settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by its form: a postgres:// or postgresql://
	// URL opens PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of account requests (register,
	// login) allowed per second and client IP.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the per-IP limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "private-vpn",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "private-vpn.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
			RateLimit:      5,
			RateBurst:      10,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from defaults, environment variables, command-line flags and the optional
// JSON file, in that order (last source wins for non-zero fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	builder := newConfigBuilder(defaultStructuredConfig())

	envCfg := new(StructuredConfig)
	builder.with(envCfg, parseEnv(envCfg))

	flagCfg, err := parseServerFlags(args)
	builder.with(flagCfg, err)

	jsonPath := envCfg.JSONFilePath
	if flagCfg != nil && flagCfg.JSONFilePath != "" {
		jsonPath = flagCfg.JSONFilePath
	}
	if jsonPath != "" {
		builder.with(parseServerJSON(jsonPath))
	}

	return builder.build((*StructuredConfig).validate)
}
