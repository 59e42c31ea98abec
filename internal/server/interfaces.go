// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Run serves until ctx is done or a signal arrives, then shuts down
	// gracefully.
	Run(ctx context.Context) error

	// Addr returns the bound address once Run has started listening.
	Addr() string

	Shutdown()
}
