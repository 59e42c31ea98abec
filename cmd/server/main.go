// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the development backend on the address the client is
// configured to call (-a / ADAPTER_ADDRESS), seeded with a demo catalogue and
// the account test@example.com / password123.
package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/handler"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/server"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("phdmatcher-devserver", os.Stdout)
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	address, err := listenAddress(cfg.Adapter.HTTPAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid backend address")
	}

	directory := handler.NewDirectory()
	if err = handler.Seed(directory); err != nil {
		log.Fatal().Err(err).Msg("error seeding directory")
	}

	resumeDir := filepath.Join(os.TempDir(), "phdmatcher-resumes")
	if err = os.MkdirAll(resumeDir, 0o750); err != nil {
		log.Fatal().Err(err).Msg("error creating resume directory")
	}

	// tokens from a previous run are rejected after a restart
	signKey := utils.NewRequestIDGenerator().Next()
	h := handler.NewHandler(directory, signKey, log, handler.WithResumeDir(resumeDir))

	srv, err := server.NewServer(h.Init(), address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func listenAddress(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("no host in %q", baseURL)
	}
	return u.Host, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
