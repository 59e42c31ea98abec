// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/store"
)

// ClientServices bundles every service the UI needs.
type ClientServices struct {
	Auth     AuthService
	Search   SearchService
	Matching MatchingService
	User     UserService
}

func NewClientServices(api adapter.API, creds store.CredentialStore, tokenTTL time.Duration, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Auth:     NewAuthService(api, creds, tokenTTL, log),
		Search:   NewSearchService(api),
		Matching: NewMatchingService(api),
		User:     NewUserService(api, log),
	}
}
