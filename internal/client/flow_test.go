// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/handler"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientStack is the client as cmd/client wires it, pointed at a test
// backend.
type clientStack struct {
	creds    store.CredentialStore
	services *service.ClientServices
	session  *session.Controller
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	directory := handler.NewDirectory()
	require.NoError(t, handler.Seed(directory))

	h := handler.NewHandler(directory, "flow-test-key", logger.Nop(), handler.WithResumeDir(t.TempDir()))
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newClientStack(t *testing.T, baseURL string, creds store.CredentialStore) *clientStack {
	t.Helper()

	cfg := config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  30 * time.Second,
	}
	api, err := adapter.NewHTTPAdapter(cfg, TokenSource(creds), "phdmatcher-client/test", logger.Nop())
	require.NoError(t, err)

	services := service.NewClientServices(api, creds, time.Hour, logger.Nop())
	return &clientStack{
		creds:    creds,
		services: services,
		session:  session.New(services.Auth, logger.Nop()),
	}
}

func TestFlow_LoginProfileMatches(t *testing.T) {
	srv := newBackend(t)
	c := newClientStack(t, srv.URL, store.NewMemoryCredentialStore())
	ctx := context.Background()

	c.session.Initialize(ctx)
	require.Equal(t, session.StatusAnonymous, c.session.State().Status)

	require.NoError(t, c.session.Login(ctx, handler.DemoEmail, handler.DemoPassword))
	state := c.session.State()
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, handler.DemoEmail, state.User.Email)
	assert.Equal(t, handler.DemoFullName, state.User.FullName)

	user, err := c.services.Auth.TestToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.User.ID, user.ID)

	updated, err := c.services.User.UpdateProfile(ctx, models.ProfileUpdate{ResearchInterests: []string{"Robotics"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Robotics"}, updated.ResearchInterests)

	result, err := c.services.Matching.MyMatches(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)
	top := result.Matches[0]
	assert.Equal(t, "Priya Natarajan", top.Name)
	require.NotNil(t, top.MatchScore)
	assert.Greater(t, *top.MatchScore, 0.5)
	require.NotNil(t, top.MatchExplanation)
	assert.Contains(t, top.MatchExplanation.MatchingConcepts, "Robotics")

	prof, err := c.services.Search.Professor(ctx, top.OpenAlexID)
	require.NoError(t, err)
	assert.Equal(t, top.Name, prof.Name)

	page, err := c.services.Search.Search(ctx, models.SearchQuery{Query: "machine learning", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Professors, 2)
	assert.Equal(t, 4, page.TotalCount)
	assert.True(t, page.HasMore(0))

	c.session.Refresh(ctx)
	assert.Equal(t, []string{"Robotics"}, c.session.State().User.ResearchInterests)
	assert.Zero(t, c.session.RefreshFailures())
}

func TestFlow_UploadResumeProgress(t *testing.T) {
	srv := newBackend(t)
	c := newClientStack(t, srv.URL, store.NewMemoryCredentialStore())
	ctx := context.Background()

	require.NoError(t, c.session.Login(ctx, handler.DemoEmail, handler.DemoPassword))
	require.False(t, c.session.State().User.HasResume())

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("%PDF-1.4 resume "), 64*1024), 0o600))

	var (
		mu   sync.Mutex
		seen []int
	)
	ack, err := c.services.User.UploadResume(ctx, path, func(p int) {
		mu.Lock()
		seen = append(seen, p)
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", ack.Filename)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	assert.Equal(t, 0, seen[0])
	assert.Equal(t, 100, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1], "progress must strictly increase")
	}

	c.session.Refresh(ctx)
	assert.True(t, c.session.State().User.HasResume())
}

func TestFlow_UploadRejectedLocally(t *testing.T) {
	srv := newBackend(t)
	c := newClientStack(t, srv.URL, store.NewMemoryCredentialStore())
	ctx := context.Background()
	require.NoError(t, c.session.Login(ctx, handler.DemoEmail, handler.DemoPassword))

	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	var calls int
	_, err := c.services.User.UploadResume(ctx, path, func(int) { calls++ })
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrValidation)
	assert.ErrorIs(t, err, validators.ErrUnsupportedFile)
	assert.Zero(t, calls)
}

func TestFlow_RejectedLogin(t *testing.T) {
	srv := newBackend(t)
	c := newClientStack(t, srv.URL, store.NewMemoryCredentialStore())
	ctx := context.Background()
	c.session.Initialize(ctx)

	err := c.session.Login(ctx, handler.DemoEmail, "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAuthentication)
	assert.Equal(t, "Invalid credentials", adapter.Message(err))
	assert.Equal(t, session.StatusAnonymous, c.session.State().Status)
	assert.False(t, c.services.Auth.IsAuthenticated(ctx))
}

func TestFlow_Register(t *testing.T) {
	srv := newBackend(t)
	c := newClientStack(t, srv.URL, store.NewMemoryCredentialStore())
	ctx := context.Background()
	c.session.Initialize(ctx)
	before := c.session.State()

	form := models.RegisterForm{
		RegisterRequest: models.RegisterRequest{Email: "new@example.com", Password: "password123", FullName: "New Student"},
		ConfirmPassword: "password321",
	}

	// несовпадающие пароли не доходят до сервера
	err := c.session.Register(ctx, form)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
	assert.Equal(t, before, c.session.State())

	form.ConfirmPassword = form.Password
	require.NoError(t, c.session.Register(ctx, form))
	state := c.session.State()
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, "new@example.com", state.User.Email)

	// повторная регистрация с тем же email
	c.session.Logout(ctx)
	err = c.session.Register(ctx, form)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrValidation)
	assert.Equal(t, "Email already registered", adapter.Message(err))
	assert.Equal(t, session.StatusAnonymous, c.session.State().Status)
}

func TestFlow_SessionSurvivesRestart(t *testing.T) {
	srv := newBackend(t)
	creds := store.NewMemoryCredentialStore()
	ctx := context.Background()

	first := newClientStack(t, srv.URL, creds)
	require.NoError(t, first.session.Login(ctx, handler.DemoEmail, handler.DemoPassword))

	second := newClientStack(t, srv.URL, creds)
	second.session.Initialize(ctx)
	state := second.session.State()
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, handler.DemoEmail, state.User.Email)

	second.session.Logout(ctx)
	_, err := creds.Get(ctx)
	assert.True(t, errors.Is(err, store.ErrNoCredential))
}

func TestFlow_ForeignTokenCleared(t *testing.T) {
	srv := newBackend(t)
	creds := store.NewMemoryCredentialStore()
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, "not-a-token", time.Hour))

	c := newClientStack(t, srv.URL, creds)
	c.session.Initialize(ctx)

	assert.Equal(t, session.StatusAnonymous, c.session.State().Status)
	_, err := creds.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNoCredential)
}

func TestFlow_BackendDown(t *testing.T) {
	srv := newBackend(t)
	url := srv.URL
	srv.Close()

	c := newClientStack(t, url, store.NewMemoryCredentialStore())
	ctx := context.Background()

	err := c.session.Login(ctx, handler.DemoEmail, handler.DemoPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, adapter.MsgTransport, adapter.Message(err))
	assert.Equal(t, session.StatusAnonymous, c.session.State().Status)
}
