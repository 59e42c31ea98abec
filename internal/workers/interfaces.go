// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface, a Workers aggregate that starts and
// stops several workers together, and the session refresher.
package workers

import (
	"context"

	"github.com/shayar/PhdMatcher-FE/internal/session"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: it starts the worker's goroutine and returns. The
// worker stops when ctx is done; Wait blocks until it has.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}

// SessionRefresher is the part of the session controller the refresh worker
// needs.
type SessionRefresher interface {
	State() session.State
	Refresh(ctx context.Context)
}
