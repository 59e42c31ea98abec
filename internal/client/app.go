// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/internal/tui"
)

type App struct {
	session SessionInitializer
	ui      UI
	workers Workers
	cfg     config.ClientSession
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(sess SessionInitializer, ui UI, workers Workers, cfg config.ClientSession, log *logger.Logger) (*App, error) {
	if sess == nil || ui == nil || workers == nil {
		return nil, errors.New("client: session, ui and workers are required")
	}
	if cfg.InitTimeout <= 0 {
		return nil, fmt.Errorf("client: invalid session init timeout %s", cfg.InitTimeout)
	}

	return &App{
		session: sess,
		ui:      ui,
		workers: workers,
		cfg:     cfg,
		logger:  log.WithComponent("client"),
	}, nil
}

// Run restores the session in the background, bounded by the configured
// init timeout, and runs the UI until the user quits. Everything started
// here is stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	initCtx, cancelInit := context.WithTimeout(ctx, a.cfg.InitTimeout)
	defer cancelInit()

	initDone := make(chan struct{})
	go func() {
		defer close(initDone)
		a.session.Initialize(initCtx)
	}()

	a.workers.Run(ctx)
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)

	cancelInit()
	cancel()
	<-initDone
	a.workers.Wait()

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// TokenSource exposes the stored credential to the HTTP adapter. A missing
// or expired token means the request goes out unauthenticated.
func TokenSource(creds store.CredentialStore) adapter.TokenSource {
	return adapter.TokenSourceFunc(func(ctx context.Context) (string, bool) {
		token, err := creds.Get(ctx)
		if err != nil || token == "" {
			return "", false
		}
		return token, true
	})
}
