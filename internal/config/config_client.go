// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// ClientConfig is the top-level configuration of the terminal client.
type ClientConfig struct {
	// Adapter holds the address of the server and the request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Storage holds the Local Record Store settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL (or host:port) of the server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the path of the SQLite file holding the Local Record Store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "private-vpn-client.db"},
		},
	}
}

// GetClientConfig loads, merges and validates the client configuration using
// the same source order as [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder(defaultClientConfig())

	envCfg := new(ClientConfig)
	builder.with(envCfg, parseEnv(envCfg))

	flagCfg, err := parseClientFlags(args)
	builder.with(flagCfg, err)

	jsonPath := envCfg.JSONFilePath
	if flagCfg != nil && flagCfg.JSONFilePath != "" {
		jsonPath = flagCfg.JSONFilePath
	}
	if jsonPath != "" {
		builder.with(parseClientJSON(jsonPath))
	}

	return builder.build((*ClientConfig).validate)
}
