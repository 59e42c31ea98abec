// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a               backend base URL or host:port
//	-env             deployment environment (development, staging, production)
//	-d               local database DSN
//	-c/-config       json file path with configs
//	-request-timeout request timeout (e.g. "15s")
//	-upload-timeout  upload timeout (e.g. "2m")
//	-rate-limit      max requests per second, 0 for unlimited
//	-token-ttl       local lifetime of the access token (e.g. "168h")
//	-init-timeout    startup session check timeout (e.g. "10s")
//	-refresh-interval period of the background user refresh (e.g. "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("phdmatcher", flag.ContinueOnError)

	var address, environment, dsn, jsonConfigPath string
	var requestTimeout, uploadTimeout, tokenTTL, initTimeout, refreshInterval time.Duration
	var rateLimit float64

	fs.StringVar(&address, "a", "", "Backend base URL")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&uploadTimeout, "upload-timeout", 0, "Upload timeout (e.g., 2m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Max requests per second, 0 for unlimited")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Access token lifetime (e.g., 168h)")
	fs.DurationVar(&initTimeout, "init-timeout", 0, "Session check timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background user refresh period (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Environment: environment},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			UploadTimeout:  uploadTimeout,
			RateLimit:      rateLimit,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Session: Session{
			TokenTTL:        tokenTTL,
			InitTimeout:     initTimeout,
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
