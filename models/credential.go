// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// CredentialName is the name under which the bearer token is persisted.
	CredentialName = "access_token"

	// SameSiteStrict is the only same-site policy the client ever writes.
	SameSiteStrict = "strict"

	// DefaultCredentialTTL is how long a stored token is considered valid
	// locally unless the token itself expires earlier.
	DefaultCredentialTTL = 7 * 24 * time.Hour
)

// Credential is the persisted form of the bearer token. It mirrors the
// attributes of the browser cookie the web client used: value, expiry,
// secure-transport flag and same-site policy.
//
// The value is stored as-is, without encryption.
type Credential struct {
	Name      string
	Value     string
	ExpiresAt time.Time
	Secure    bool
	SameSite  string
}

// Expired reports whether the credential is no longer valid at now.
func (c Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
