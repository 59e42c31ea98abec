package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "environment": "development" },
		"adapter": {
			"http_address": "http://localhost:9000",
			"request_timeout": "30s",
			"upload_timeout": 60000000000,
			"rate_limit": 4
		},
		"storage": { "db": { "dsn": "/var/lib/phd.db" } },
		"session": { "token_ttl": "48h", "init_timeout": "5s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Adapter.UploadTimeout)
	assert.InDelta(t, 4.0, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, "/var/lib/phd.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 48*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Session.InitTimeout)
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"session":{"token_ttl":true}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
