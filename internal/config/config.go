// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backends understood by [Storage.Backend].
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ClientConfig is the top-level configuration container for the
// project-pilot client. It is populated by merging values from flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds sync-session settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the HTTP transport to the remote project
	// store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the local cache backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Logging holds the client log destination and level.
	Logging Logging `envPrefix:"LOGGING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of a sync session.
type App struct {
	// PageLimit is the number of projects requested per page.
	// Env: APP_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the remote project store
	// (e.g. "http://localhost:4000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an optional bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Storage selects the local cache backend.
type Storage struct {
	// Backend is one of "sqlite", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite settings used by the "sqlite" backend.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file settings used by the "file" backend.
	File File `envPrefix:"FILE_"`
}

// DB holds SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds JSON file storage settings.
type File struct {
	// Path is the JSON document the cache is written to.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RefreshInterval is how often page 1 is re-fetched in the background.
	// Zero disables the refresh worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Logging holds client log settings.
type Logging struct {
	// File is the rotated log file path. Empty means stderr.
	// Env: LOGGING_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOGGING_LEVEL
	Level string `env:"LEVEL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources (see package documentation for precedence).
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		App: App{PageLimit: 20},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:4000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Backend: BackendSQLite,
			DB:      DB{DSN: "projectpilot.db"},
			File:    File{Path: "projectpilot.json"},
		},
		Logging: Logging{
			File:  "projectpilot.log",
			Level: "debug",
		},
	}
}
