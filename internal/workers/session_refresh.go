// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/logger"
)

// SessionRefreshWorker re-reads the signed-in user every interval so profile
// changes made elsewhere reach the UI. It does nothing while the session is
// not Authenticated, and refresh failures never sign the user out.
type SessionRefreshWorker struct {
	session  SessionRefresher
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	wg sync.WaitGroup
}

// NewSessionRefreshWorker returns a worker ticking every interval; each
// refresh is bounded by timeout.
func NewSessionRefreshWorker(s SessionRefresher, interval, timeout time.Duration, log *logger.Logger) *SessionRefreshWorker {
	return &SessionRefreshWorker{
		session:  s,
		interval: interval,
		timeout:  timeout,
		logger:   log.WithComponent("session-refresh"),
	}
}

func (w *SessionRefreshWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
	}()
}

func (w *SessionRefreshWorker) Wait() {
	w.wg.Wait()
}

func (w *SessionRefreshWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("session refresher started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("session refresher stopped")
			return
		case <-ticker.C:
			if !w.session.State().IsAuthenticated() {
				continue
			}
			refreshCtx, cancel := context.WithTimeout(ctx, w.timeout)
			w.session.Refresh(refreshCtx)
			cancel()
		}
	}
}
