package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "https://api.example",
		"-env", "staging",
		"-d", ":memory:",
		"-config", "/tmp/phd.json",
		"-request-timeout", "5s",
		"-upload-timeout", "3m",
		"-rate-limit", "10",
		"-token-ttl", "24h",
		"-init-timeout", "2s",
		"-refresh-interval", "1m",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/phd.json", cfg.JSONFilePath)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.Adapter.UploadTimeout)
	assert.InDelta(t, 10.0, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, 2*time.Second, cfg.Session.InitTimeout)
	assert.Equal(t, time.Minute, cfg.Session.RefreshInterval)
}

// короткий алиас -c пишет в то же поле
func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-token-ttl", "forever"})
	assert.Error(t, err)
}
