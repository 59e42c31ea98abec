// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInitializer struct {
	started chan struct{}
	block   bool
	done    atomic.Bool
	initErr atomic.Value
	hadDL   atomic.Bool
}

func newFakeInitializer(block bool) *fakeInitializer {
	return &fakeInitializer{started: make(chan struct{}), block: block}
}

func (f *fakeInitializer) Initialize(ctx context.Context) {
	_, ok := ctx.Deadline()
	f.hadDL.Store(ok)
	close(f.started)
	if f.block {
		<-ctx.Done()
		f.initErr.Store(ctx.Err())
	}
	f.done.Store(true)
}

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f *fakeUI) Run(ctx context.Context) error {
	return f.run(ctx)
}

type fakeWorkers struct {
	running atomic.Bool
	ctx     context.Context
	waited  atomic.Bool
}

func (f *fakeWorkers) Run(ctx context.Context) {
	f.ctx = ctx
	f.running.Store(true)
}

func (f *fakeWorkers) Wait() {
	f.waited.Store(true)
}

func sessionCfg() config.ClientSession {
	return config.ClientSession{TokenTTL: time.Hour, InitTimeout: time.Second, RefreshInterval: time.Minute}
}

func TestNewApp_Validation(t *testing.T) {
	ui := &fakeUI{run: func(context.Context) error { return nil }}

	_, err := NewApp(nil, ui, &fakeWorkers{}, sessionCfg(), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(newFakeInitializer(false), nil, &fakeWorkers{}, sessionCfg(), logger.Nop())
	assert.Error(t, err)

	cfg := sessionCfg()
	cfg.InitTimeout = 0
	_, err = NewApp(newFakeInitializer(false), ui, &fakeWorkers{}, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_StopsEverythingWhenUIExits(t *testing.T) {
	initer := newFakeInitializer(true)
	ws := &fakeWorkers{}
	ui := &fakeUI{run: func(ctx context.Context) error {
		<-initer.started
		return tui.ErrUserQuit
	}}

	cfg := sessionCfg()
	cfg.InitTimeout = time.Minute
	app, err := NewApp(initer, ui, ws, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	// инициализация прервана отменой, а не таймаутом
	assert.True(t, initer.done.Load())
	assert.True(t, initer.hadDL.Load())
	assert.Equal(t, context.Canceled, initer.initErr.Load())
	assert.True(t, ws.running.Load())
	assert.True(t, ws.waited.Load())
	assert.ErrorIs(t, ws.ctx.Err(), context.Canceled)
}

func TestApp_Run_InitTimeout(t *testing.T) {
	initer := newFakeInitializer(true)
	ui := &fakeUI{run: func(ctx context.Context) error {
		<-initer.started
		for !initer.done.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		return nil
	}}

	cfg := sessionCfg()
	cfg.InitTimeout = 20 * time.Millisecond
	app, err := NewApp(initer, ui, &fakeWorkers{}, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, context.DeadlineExceeded, initer.initErr.Load())
}

func TestApp_Run_UIError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &fakeUI{run: func(context.Context) error { return boom }}

	app, err := NewApp(newFakeInitializer(false), ui, &fakeWorkers{}, sessionCfg(), logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()
	creds := store.NewMemoryCredentialStore()
	src := TokenSource(creds)

	_, ok := src.Token(ctx)
	assert.False(t, ok)

	require.NoError(t, creds.Set(ctx, "abc", time.Hour))
	token, ok := src.Token(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	require.NoError(t, creds.Clear(ctx))
	_, ok = src.Token(ctx)
	assert.False(t, ok)
}
