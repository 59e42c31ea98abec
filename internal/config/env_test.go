// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFrom(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{
		"APP_ENVIRONMENT":          " Development ",
		"ADAPTER_ADDRESS":          "api.example:8000 ",
		"ADAPTER_REQUEST_TIMEOUT":  "3s",
		"ADAPTER_RATE_LIMIT":       "2.5",
		"STORAGE_DB_DSN":           ":memory:",
		"SESSION_TOKEN_TTL":        "24h",
		"SESSION_REFRESH_INTERVAL": "1m",
		"CONFIG":                   "client.json",
	})
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "api.example:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2.5, cfg.Adapter.RateLimit)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, time.Minute, cfg.Session.RefreshInterval)
	assert.Zero(t, cfg.Session.InitTimeout)
	assert.Equal(t, "client.json", cfg.JSONFilePath)
}

func TestParseEnvFrom_BadDuration(t *testing.T) {
	err := parseEnvFrom(&StructuredConfig{}, map[string]string{"SESSION_INIT_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestParseEnvFrom_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{}))
	assert.Equal(t, StructuredConfig{}, *cfg)
}
