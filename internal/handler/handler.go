// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
)

const (
	// TokenIssuer is the issuer claim of every token the backend signs.
	TokenIssuer = "phdmatcher-devserver"

	// DefaultTokenTTL matches the lifetime of production tokens.
	DefaultTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	directory *Directory
	signKey   string
	tokenTTL  time.Duration

	// resumeDir receives uploaded resumes; empty means contents are
	// discarded after validation.
	resumeDir string

	requestIDs *utils.RequestIDGenerator
	logger     *logger.Logger
}

type Option func(*Handler)

func WithTokenTTL(ttl time.Duration) Option {
	return func(h *Handler) {
		h.tokenTTL = ttl
	}
}

func WithResumeDir(dir string) Option {
	return func(h *Handler) {
		h.resumeDir = dir
	}
}

func NewHandler(directory *Directory, signKey string, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		directory:  directory,
		signKey:    signKey,
		tokenTTL:   DefaultTokenTTL,
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
