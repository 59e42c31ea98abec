// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedSQLiteStore(t *testing.T, clock *fakeClock) (*SQLiteCredentialStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewSQLiteCredentialStore(&DB{DB: db, logger: l}, l, WithClock(clock.Now)), mock
}

func TestSQLiteStore_Set(t *testing.T) {
	clock := newFakeClock()
	s, mock := newMockedSQLiteStore(t, clock)

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(models.CredentialName, "opaque", clock.now.Add(time.Hour).UnixMilli(), true, models.SameSiteStrict).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "opaque", time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetDBError(t *testing.T) {
	clock := newFakeClock()
	s, mock := newMockedSQLiteStore(t, clock)

	mock.ExpectExec("INSERT INTO credentials").WillReturnError(errors.New("disk I/O error"))

	err := s.Set(context.Background(), "opaque", time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteStore_GetNoRows(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, newFakeClock())

	mock.ExpectQuery("SELECT name, value, expires_at, secure, same_site FROM credentials").
		WithArgs(models.CredentialName).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetValid(t *testing.T) {
	clock := newFakeClock()
	s, mock := newMockedSQLiteStore(t, clock)

	rows := sqlmock.NewRows([]string{"name", "value", "expires_at", "secure", "same_site"}).
		AddRow(models.CredentialName, "opaque", clock.now.Add(time.Minute).UnixMilli(), true, models.SameSiteStrict)
	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(rows)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque", got)
}

func TestSQLiteStore_GetExpiredDeletesRow(t *testing.T) {
	clock := newFakeClock()
	s, mock := newMockedSQLiteStore(t, clock)

	rows := sqlmock.NewRows([]string{"name", "value", "expires_at", "secure", "same_site"}).
		AddRow(models.CredentialName, "opaque", clock.now.Add(-time.Second).UnixMilli(), true, models.SameSiteStrict)
	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM credentials").
		WithArgs(models.CredentialName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetQueryError(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, newFakeClock())

	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnError(errors.New("database is locked"))

	_, err := s.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNoCredential)
}

// ── real SQLite ─────────────────────────────────────────────────────────────

func TestClientStorages_SQLiteFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "phdmatcher.db")
	cfg := &config.ClientConfig{
		App:     config.ClientApp{Environment: config.EnvDevelopment},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
	}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.Credentials.Set(ctx, "persisted", time.Hour))
	require.NoError(t, storages.Close())

	// новый процесс видит тот же токен
	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Credentials.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)

	sqliteStore, ok := reopened.Credentials.(*SQLiteCredentialStore)
	require.True(t, ok)
	c, err := sqliteStore.Credential(ctx)
	require.NoError(t, err)
	assert.False(t, c.Secure, "development credentials are not marked secure")
	assert.Equal(t, models.SameSiteStrict, c.SameSite)

	require.NoError(t, reopened.Credentials.Clear(ctx))
	require.NoError(t, reopened.Credentials.Clear(ctx))
	_, err = reopened.Credentials.Get(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestClientStorages_MemoryDSN(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{Environment: config.EnvProduction},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}},
	}

	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, ok := storages.Credentials.(*MemoryCredentialStore)
	assert.True(t, ok)
}
