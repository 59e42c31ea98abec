// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's use cases on top of the transport
// adapter: the authentication exchange and credential lifecycle, professor
// search, advisor matching and profile management.
//
// Services are thin. Every failure they return is an [adapter.Error]; the
// auth service re-classifies backend rejections per operation (a rejected
// login is an authentication failure, a rejected registration a validation
// failure) and otherwise errors propagate untouched.
package service

import (
	"context"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService performs the credential exchanges and owns the stored token.
type AuthService interface {
	// Login exchanges email and password for a token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// CurrentUser fetches the profile of the token holder. Without a stored
	// token it fails with an authentication error and makes no request.
	CurrentUser(ctx context.Context) (models.User, error)

	// TestToken asks the backend to verify the stored token and returns its
	// owner.
	TestToken(ctx context.Context) (models.User, error)

	// Logout removes the stored token. It never fails.
	Logout(ctx context.Context)

	// IsAuthenticated reports whether a non-expired token is stored. It never
	// touches the network.
	IsAuthenticated(ctx context.Context) bool

	// Token returns the stored token; it satisfies [adapter.TokenSource].
	Token(ctx context.Context) (string, bool)
}

// SearchService looks up professors.
type SearchService interface {
	// Search runs a free-text and filter search.
	Search(ctx context.Context, query models.SearchQuery) (models.SearchResult, error)

	// Professor fetches one professor by id.
	Professor(ctx context.Context, id string) (models.Professor, error)

	// Professors lists professors page by page.
	Professors(ctx context.Context, filter models.ProfessorFilter) ([]models.Professor, error)
}

// MatchingService ranks professors against a student profile.
type MatchingService interface {
	// FindMatches runs matching with explicit parameters.
	FindMatches(ctx context.Context, req models.MatchRequest) (models.MatchResult, error)

	// MyMatches returns the top matches for the current user. topK <= 0
	// selects [models.DefaultTopK].
	MyMatches(ctx context.Context, topK int) (models.MatchResult, error)
}

// UserService manages the current user's profile.
type UserService interface {
	// UpdateProfile applies a partial update and returns the new profile.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// UploadResume validates and uploads the file at path.
	UploadResume(ctx context.Context, path string, onProgress adapter.ProgressFunc) (models.UploadAck, error)
}
