// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/client"
	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/internal/tui"
	"github.com/shayar/PhdMatcher-FE/internal/workers"
	"github.com/shayar/PhdMatcher-FE/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("phdmatcher-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	api, err := adapter.NewHTTPAdapter(cfg.Adapter, client.TokenSource(storages.Credentials), buildInfo.UserAgent(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	services := service.NewClientServices(api, storages.Credentials, cfg.Session.TokenTTL, log)
	sess := session.New(services.Auth, log)

	ui, err := tui.New(services, sess, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	bg := workers.NewWorkers(
		workers.NewSessionRefreshWorker(sess, cfg.Session.RefreshInterval, cfg.Adapter.RequestTimeout, log),
	)

	app, err := client.NewApp(sess, ui, bg, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
