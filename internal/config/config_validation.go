// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Individual values are
// checked on the client view; here only cross-source problems are caught.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.UploadTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.TokenTTL <= 0 || cfg.Session.InitTimeout <= 0 || cfg.Session.RefreshInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
