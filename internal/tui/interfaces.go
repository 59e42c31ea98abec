// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/models"
)

// Session is the part of [session.Controller] the UI drives.
type Session interface {
	State() session.State
	Subscribe(fn func(session.State)) (unsubscribe func())
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, form models.RegisterForm) error
	Logout(ctx context.Context)
	Refresh(ctx context.Context)
}

// TokenVerifier asks the backend whether the stored token is still good.
type TokenVerifier interface {
	TestToken(ctx context.Context) (models.User, error)
}

var _ Session = (*session.Controller)(nil)
