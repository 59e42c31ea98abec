// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"testing"

	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	user := &models.User{ID: 1}

	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{"initializing", State{Status: StatusInitializing}, DecisionLoading},
		{"initializing ignores user", State{Status: StatusInitializing, User: user}, DecisionLoading},
		{"anonymous", State{Status: StatusAnonymous}, DecisionRedirectLogin},
		{"authenticated", State{Status: StatusAuthenticated, User: user}, DecisionRender},
		{"authenticated without user", State{Status: StatusAuthenticated}, DecisionRedirectLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.state))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "initializing", StatusInitializing.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "anonymous", StatusAnonymous.String())
	assert.Equal(t, "unknown", Status(42).String())
	assert.Equal(t, "redirect_login", DecisionRedirectLogin.String())
}
