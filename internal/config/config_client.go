// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Environment is the deployment environment name.
	Environment string
}

// IsDevelopment reports whether the client runs in local development.
func (a ClientApp) IsDevelopment() bool {
	return a.Environment == EnvDevelopment
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// UploadTimeout is the timeout for file uploads.
	UploadTimeout time.Duration
	// RateLimit is the maximum number of requests per second, 0 for none.
	RateLimit float64
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSession contains session settings.
type ClientSession struct {
	// TokenTTL is the local lifetime of a stored access token.
	TokenTTL time.Duration
	// InitTimeout bounds the startup session check.
	InitTimeout time.Duration
	// RefreshInterval is the period of the background user refresh.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Session ClientSession
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Environment: cfg.App.Environment},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Session: ClientSession{
			TokenTTL:        cfg.Session.TokenTTL,
			InitTimeout:     cfg.Session.InitTimeout,
			RefreshInterval: cfg.Session.RefreshInterval,
		},
	}
}
