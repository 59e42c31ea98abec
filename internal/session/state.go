// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/shayar/PhdMatcher-FE/models"

// Status is the phase of the session state machine.
type Status int

const (
	StatusInitializing Status = iota
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session.
type State struct {
	Status Status

	// User is set only when Status is StatusAuthenticated.
	User *models.User

	// Version grows by one with every applied transition.
	Version uint64
}

// IsLoading reports whether the initial session check is still running.
func (s State) IsLoading() bool {
	return s.Status == StatusInitializing
}

// IsAuthenticated reports whether a verified user is signed in.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}
