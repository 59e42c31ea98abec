// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/store"
	"github.com/shayar/PhdMatcher-FE/models"
)

// MsgNotAuthenticated is returned when an operation needs a stored token and
// none is held.
const MsgNotAuthenticated = "Not authenticated"

type authService struct {
	api      adapter.API
	creds    store.CredentialStore
	tokenTTL time.Duration
	logger   *logger.Logger
}

// NewAuthService returns an [AuthService] that stores tokens in creds for
// tokenTTL (capped by the token's own expiry).
func NewAuthService(api adapter.API, creds store.CredentialStore, tokenTTL time.Duration, log *logger.Logger) AuthService {
	return &authService{api: api, creds: creds, tokenTTL: tokenTTL, logger: log.WithComponent("auth")}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	form := url.Values{
		"username": {req.Email},
		"password": {req.Password},
	}

	var resp models.AuthResponse
	if err := a.api.PostForm(ctx, PathLogin, form, &resp); err != nil {
		return models.AuthResponse{}, reclassifyRejection(err, adapter.KindAuthentication)
	}

	if err := a.storeToken(ctx, resp); err != nil {
		return models.AuthResponse{}, err
	}

	a.logger.Info().Msg("logged in")
	return resp, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, PathRegister, req, &resp); err != nil {
		return models.AuthResponse{}, reclassifyRejection(err, adapter.KindValidation)
	}

	if err := a.storeToken(ctx, resp); err != nil {
		return models.AuthResponse{}, err
	}

	a.logger.Info().Msg("registered")
	return resp, nil
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	if _, ok := a.Token(ctx); !ok {
		return models.User{}, adapter.NewAuthenticationError(MsgNotAuthenticated)
	}

	var user models.User
	if err := a.api.Get(ctx, PathCurrentUser, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *authService) TestToken(ctx context.Context) (models.User, error) {
	if _, ok := a.Token(ctx); !ok {
		return models.User{}, adapter.NewAuthenticationError(MsgNotAuthenticated)
	}

	var user models.User
	if err := a.api.Post(ctx, PathTestToken, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.creds.Clear(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("error clearing stored token")
		return
	}
	a.logger.Info().Msg("logged out")
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.Token(ctx)
	return ok
}

func (a *authService) Token(ctx context.Context) (string, bool) {
	token, err := a.creds.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoCredential) {
			a.logger.Warn().Err(err).Msg("error reading stored token")
		}
		return "", false
	}
	return token, token != ""
}

func (a *authService) storeToken(ctx context.Context, resp models.AuthResponse) error {
	if resp.AccessToken == "" {
		return adapter.NewUnknownError("Empty access token in response", nil)
	}

	if err := a.creds.Set(ctx, resp.AccessToken, a.tokenTTL); err != nil {
		a.logger.Err(err).Msg("error storing token")
		return adapter.NewUnknownError("Unable to save the session", err)
	}
	return nil
}

// reclassifyRejection turns a 4xx answer into kind, keeping the backend
// message. Transport failures and 5xx answers are returned as they are.
func reclassifyRejection(err error, kind adapter.Kind) error {
	ae := adapter.As(err)
	if ae == nil || ae.Status < 400 || ae.Status >= 500 {
		return err
	}
	return ae.WithKind(kind)
}
