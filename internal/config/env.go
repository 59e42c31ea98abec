// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Fields are mapped via
// the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom is parseEnv over an explicit variable set. A nil environ
// means the process environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	// APP_ENVIRONMENT=Development is accepted as well.
	cfg.App.Environment = strings.ToLower(strings.TrimSpace(cfg.App.Environment))
	cfg.Adapter.HTTPAddress = strings.TrimSpace(cfg.Adapter.HTTPAddress)

	return nil
}
