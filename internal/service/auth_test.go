// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/mock"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{ID: 1, Email: "test@example.com", FullName: "Test User", IsActive: true}

// newTestAuthSvc: хелпер для создания authService с моком адаптера и
// хранилищем в памяти
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockAPI, *store.MemoryCredentialStore) {
	t.Helper()
	api := mock.NewMockAPI(ctrl)
	creds := store.NewMemoryCredentialStore()
	svc := NewAuthService(api, creds, time.Hour, logger.Nop()).(*authService)
	return svc, api, creds
}

func returnJSON[T any](v T) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, out any) error {
		*out.(*T) = v
		return nil
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().
		PostForm(ctx, PathLogin, url.Values{"username": {"test@example.com"}, "password": {"password123"}}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*models.AuthResponse) = models.AuthResponse{AccessToken: "test-token", TokenType: "bearer"}
			return nil
		})

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", resp.AccessToken)

	stored, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-token", stored)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestAuthService_Login_RejectedIsAuthenticationWithVerbatimMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().PostForm(ctx, PathLogin, gomock.Any(), gomock.Any()).
		Return(&adapter.Error{Kind: adapter.KindValidation, Status: http.StatusBadRequest, Message: "Invalid credentials"})

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAuthentication)
	assert.Equal(t, "Invalid credentials", adapter.Message(err))

	_, err = creds.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNoCredential)
}

func TestAuthService_Login_TransportStaysTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, _ := newTestAuthSvc(t, ctrl)

	api.EXPECT().PostForm(gomock.Any(), PathLogin, gomock.Any(), gomock.Any()).
		Return(&adapter.Error{Kind: adapter.KindTransport, Message: adapter.MsgTransport})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestAuthService_Login_EmptyTokenNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	api.EXPECT().PostForm(ctx, PathLogin, gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnknown)

	_, err = creds.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNoCredential)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.RegisterRequest{Email: "new@uni.edu", Password: "password123", FullName: "New Student"}

	api.EXPECT().Post(ctx, PathRegister, req, gomock.Any()).
		DoAndReturn(returnJSON(models.AuthResponse{AccessToken: "reg-token", TokenType: "bearer"}))

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	stored, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reg-token", stored)
}

func TestAuthService_Register_DuplicateIsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, _ := newTestAuthSvc(t, ctrl)

	api.EXPECT().Post(gomock.Any(), PathRegister, gomock.Any(), gomock.Any()).
		Return(&adapter.Error{Kind: adapter.KindAuthentication, Status: http.StatusForbidden, Message: "Email already registered"})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "dup@uni.edu"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrValidation)
	assert.Equal(t, "Email already registered", adapter.Message(err))
}

func TestAuthService_Register_ServerErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, _ := newTestAuthSvc(t, ctrl)

	api.EXPECT().Post(gomock.Any(), PathRegister, gomock.Any(), gomock.Any()).
		Return(&adapter.Error{Kind: adapter.KindUnknown, Status: http.StatusInternalServerError, Message: "Internal Server Error"})

	_, err := svc.Register(context.Background(), models.RegisterRequest{})
	assert.ErrorIs(t, err, adapter.ErrUnknown)
}

// ── CurrentUser / TestToken ──────────────────────────────────────────────────

func TestAuthService_CurrentUser_NoTokenNoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	// no EXPECT on the API mock: any call fails the test

	_, err := svc.CurrentUser(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, "test-token", time.Hour))

	api.EXPECT().Get(ctx, PathCurrentUser, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*models.User) = testUser
			return nil
		})

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)
}

func TestAuthService_CurrentUser_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, "stale", time.Hour))

	api.EXPECT().Get(ctx, PathCurrentUser, nil, gomock.Any()).
		Return(&adapter.Error{Kind: adapter.KindAuthentication, Status: http.StatusUnauthorized, Message: "Could not validate credentials"})

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}

func TestAuthService_TestToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, "test-token", time.Hour))

	api.EXPECT().Post(ctx, PathTestToken, nil, gomock.Any()).DoAndReturn(returnJSON(testUser))

	user, err := svc.TestToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test User", user.FullName)
}

// ── Logout / Token ───────────────────────────────────────────────────────────

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, creds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, "t", time.Hour))

	svc.Logout(ctx)
	svc.Logout(ctx)

	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestAuthService_Logout_StoreErrorSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	svc := NewAuthService(mock.NewMockAPI(ctrl), creds, time.Hour, logger.Nop())

	creds.EXPECT().Clear(gomock.Any()).Return(errors.New("database is locked"))

	assert.NotPanics(t, func() { svc.Logout(context.Background()) })
}

func TestAuthService_Token_StoreErrorIsNoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	svc := NewAuthService(mock.NewMockAPI(ctrl), creds, time.Hour, logger.Nop())

	creds.EXPECT().Get(gomock.Any()).Return("", errors.New("disk I/O error"))

	_, ok := svc.Token(context.Background())
	assert.False(t, ok)
}

func TestAuthService_StoreFailureOnLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)
	svc := NewAuthService(api, creds, time.Hour, logger.Nop())

	api.EXPECT().PostForm(gomock.Any(), PathLogin, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*models.AuthResponse) = models.AuthResponse{AccessToken: "tok"}
			return nil
		})
	creds.EXPECT().Set(gomock.Any(), "tok", time.Hour).Return(errors.New("readonly database"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, adapter.ErrUnknown)
}
