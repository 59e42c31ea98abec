// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
)

// ClientStorages bundles the client's local storage backends.
type ClientStorages struct {
	Credentials CredentialStore

	db *DB
}

// NewClientStorages builds storage from cfg. The ":memory:" DSN yields a
// process-local credential store; any other DSN opens and migrates a SQLite
// database. Stored credentials are marked secure unless running in
// development.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*ClientStorages, error) {
	log = log.WithComponent("store")
	opts := []Option{WithSecure(!cfg.App.IsDevelopment())}

	if cfg.Storage.DB.DSN == MemoryDSN {
		return &ClientStorages{Credentials: NewMemoryCredentialStore(opts...)}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting local database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating local database: %w", err)
	}

	return &ClientStorages{
		Credentials: NewSQLiteCredentialStore(db, log, opts...),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
