// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/models"
)

const credentialsTable = "credentials"

// SQLiteCredentialStore keeps the credential in the local SQLite database.
type SQLiteCredentialStore struct {
	db     *DB
	opts   options
	logger *logger.Logger
}

// NewSQLiteCredentialStore returns a [CredentialStore] backed by the
// credentials table of db. The schema must already be migrated.
func NewSQLiteCredentialStore(db *DB, log *logger.Logger, opts ...Option) *SQLiteCredentialStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SQLiteCredentialStore{db: db, opts: o, logger: log}
}

func (s *SQLiteCredentialStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	c := newCredential(token, ttl, s.opts.now(), s.opts.secure)

	query, args, err := sq.Insert(credentialsTable).
		Columns("name", "value", "expires_at", "secure", "same_site").
		Values(c.Name, c.Value, c.ExpiresAt.UnixMilli(), c.Secure, c.SameSite).
		Suffix("ON CONFLICT(name) DO UPDATE SET " +
			"value = excluded.value, expires_at = excluded.expires_at, " +
			"secure = excluded.secure, same_site = excluded.same_site").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteCredentialStore.Set").Msg("error saving credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().Time("expires_at", c.ExpiresAt).Msg("credential saved")
	return nil
}

func (s *SQLiteCredentialStore) Get(ctx context.Context) (string, error) {
	c, err := s.Credential(ctx)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Credential returns the full held record.
func (s *SQLiteCredentialStore) Credential(ctx context.Context) (models.Credential, error) {
	query, args, err := sq.Select("name", "value", "expires_at", "secure", "same_site").
		From(credentialsTable).
		Where(sq.Eq{"name": models.CredentialName}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		c         models.Credential
		expiresAt int64
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&c.Name, &c.Value, &expiresAt, &c.Secure, &c.SameSite)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrNoCredential
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SQLiteCredentialStore.Credential").Msg("error reading credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	c.ExpiresAt = time.UnixMilli(expiresAt)

	if c.Expired(s.opts.now()) {
		if err = s.Clear(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("error removing expired credential")
		}
		return models.Credential{}, ErrNoCredential
	}

	return c, nil
}

func (s *SQLiteCredentialStore) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(credentialsTable).
		Where(sq.Eq{"name": models.CredentialName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteCredentialStore.Clear").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
