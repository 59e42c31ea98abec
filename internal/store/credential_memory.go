// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/shayar/PhdMatcher-FE/models"
)

// MemoryCredentialStore keeps the credential in process memory.
type MemoryCredentialStore struct {
	mu         sync.Mutex
	credential *models.Credential
	opts       options
}

// NewMemoryCredentialStore returns a process-local [CredentialStore].
func NewMemoryCredentialStore(opts ...Option) *MemoryCredentialStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryCredentialStore{opts: o}
}

func (m *MemoryCredentialStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	c := newCredential(token, ttl, m.opts.now(), m.opts.secure)

	m.mu.Lock()
	m.credential = &c
	m.mu.Unlock()

	return nil
}

func (m *MemoryCredentialStore) Get(ctx context.Context) (string, error) {
	c, err := m.Credential(ctx)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Credential returns the full held record.
func (m *MemoryCredentialStore) Credential(ctx context.Context) (models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.credential == nil {
		return models.Credential{}, ErrNoCredential
	}
	if m.credential.Expired(m.opts.now()) {
		m.credential = nil
		return models.Credential{}, ErrNoCredential
	}

	return *m.credential, nil
}

func (m *MemoryCredentialStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.credential = nil
	m.mu.Unlock()
	return nil
}
