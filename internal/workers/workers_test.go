// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Wait were called.
type mockWorker struct {
	runCount  int
	waitCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Wait() {
	m.waitCount++
}

func TestWorkers_RunAndWait_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d] run", i)
		assert.Equal(t, 1, w.waitCount, "worker[%d] wait", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Wait()
}

// fakeSession: потокобезопасная заглушка контроллера сессии
type fakeSession struct {
	mu        sync.Mutex
	state     session.State
	refreshes atomic.Int32
	deadlines atomic.Int32
}

func (f *fakeSession) State() session.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) setState(s session.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

func (f *fakeSession) Refresh(ctx context.Context) {
	if _, ok := ctx.Deadline(); ok {
		f.deadlines.Add(1)
	}
	f.refreshes.Add(1)
}

func TestSessionRefreshWorker_RefreshesOnlyWhenAuthenticated(t *testing.T) {
	fake := &fakeSession{state: session.State{Status: session.StatusAnonymous}}
	w := NewSessionRefreshWorker(fake, 5*time.Millisecond, time.Second, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, fake.refreshes.Load())

	fake.setState(session.State{Status: session.StatusAuthenticated, User: &models.User{ID: 1}})
	require.Eventually(t, func() bool { return fake.refreshes.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	w.Wait()

	stopped := fake.refreshes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, fake.refreshes.Load())
	assert.Equal(t, fake.refreshes.Load(), fake.deadlines.Load())
}

func TestSessionRefreshWorker_WaitWithoutRun(t *testing.T) {
	w := NewSessionRefreshWorker(&fakeSession{}, time.Minute, time.Second, logger.Nop())

	// Wait must return immediately when the worker was never started
	w.Wait()
}
