// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's session credential.
//
// Exactly one credential, the backend access token, is held at a time. It
// carries the attributes of a browser cookie (expiry, secure flag,
// SameSite=strict) so that the backend contract is the same whichever client
// holds it. The value is stored as-is and is not encrypted at rest.
package store

import (
	"context"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore is the single place the access token lives.
type CredentialStore interface {
	// Set replaces any held token. A non-positive ttl means
	// [models.DefaultCredentialTTL]. When token is a JWT with an earlier exp
	// claim, that instant is used as the expiry instead.
	Set(ctx context.Context, token string, ttl time.Duration) error

	// Get returns the held token, or [ErrNoCredential] when none is held or
	// it has expired. An expired token is removed.
	Get(ctx context.Context) (string, error)

	// Clear removes the token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Clock returns the current time. Stores default to time.Now.
type Clock func() time.Time

// Option configures a credential store.
type Option func(*options)

type options struct {
	now    Clock
	secure bool
}

func defaultOptions() options {
	return options{now: time.Now, secure: true}
}

// WithClock overrides the time source.
func WithClock(now Clock) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSecure sets the secure-transport attribute of stored credentials.
func WithSecure(secure bool) Option {
	return func(o *options) {
		o.secure = secure
	}
}

// newCredential builds the record for token as of now.
func newCredential(token string, ttl time.Duration, now time.Time, secure bool) models.Credential {
	if ttl <= 0 {
		ttl = models.DefaultCredentialTTL
	}

	expiresAt := now.Add(ttl)
	if exp, ok := utils.TokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	return models.Credential{
		Name:      models.CredentialName,
		Value:     token,
		ExpiresAt: expiresAt,
		Secure:    secure,
		SameSite:  models.SameSiteStrict,
	}
}
