// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Deployment environments understood by the client. Only [EnvDevelopment]
// disables the secure-transport flag of the stored credential.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and transport limits.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds credential lifetime and session initialisation settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment environment ("development", "staging",
	// "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// Adapter holds settings of the HTTP transport to the matching backend.
type Adapter struct {
	// HTTPAddress is the base URL of the backend API
	// (e.g. "https://api.phdmatcher.example" or "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every regular API request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds a resume upload, which may be much slower than a
	// regular request.
	// Env: ADAPTER_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`

	// RateLimit caps outgoing requests per second. Zero disables throttling.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path, or ":memory:" for a process-local store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds settings of the authentication session.
type Session struct {
	// TokenTTL is how long a stored access token stays valid locally.
	// Env: SESSION_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// InitTimeout bounds the session restoration check at startup.
	// Env: SESSION_INIT_TIMEOUT
	InitTimeout time.Duration `env:"INIT_TIMEOUT"`

	// RefreshInterval is the period of the background user refresh.
	// Env: SESSION_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Environment: EnvProduction},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
			UploadTimeout:  2 * time.Minute,
		},
		Storage: Storage{DB: DB{DSN: "phdmatcher.db"}},
		Session: Session{
			TokenTTL:        7 * 24 * time.Hour,
			InitTimeout:     10 * time.Second,
			RefreshInterval: 5 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using args as the command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
