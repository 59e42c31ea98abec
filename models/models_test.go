// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DecodeBackendPayload(t *testing.T) {
	payload := `{"id":1,"email":"test@example.com","full_name":"Test User","is_active":true,
		"research_interests":["nlp","ir"],"resume_file_path":"/uploads/1.pdf"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Test User", u.DisplayName())
	assert.True(t, u.IsActive)
	assert.True(t, u.HasResume())
	assert.Equal(t, []string{"nlp", "ir"}, u.ResearchInterests)
}

func TestUser_DisplayNameFallsBackToEmail(t *testing.T) {
	assert.Equal(t, "a@b.c", User{Email: "a@b.c"}.DisplayName())
}

func TestProfileUpdate_OmitsNilFields(t *testing.T) {
	name := "New Name"
	body, err := json.Marshal(ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"full_name":"New Name"}`, string(body))

	assert.False(t, ProfileUpdate{FullName: &name}.IsEmpty())
	assert.True(t, ProfileUpdate{}.IsEmpty())
}

func TestSearchResult_HasMore(t *testing.T) {
	r := SearchResult{Professors: make([]Professor, 10), TotalCount: 25}
	assert.True(t, r.HasMore(0))
	assert.True(t, r.HasMore(10))
	assert.False(t, r.HasMore(15))
}

func TestProfessor_Title(t *testing.T) {
	assert.Equal(t, "Ada L.", Professor{Name: "Ada Lovelace", DisplayName: "Ada L."}.Title())
	assert.Equal(t, "Ada Lovelace", Professor{Name: "Ada Lovelace"}.Title())
}

func TestCredential_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := Credential{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, c.Expired(now))
	assert.True(t, c.Expired(now.Add(time.Minute)))
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc123")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "phdmatcher-client/N/A", info.UserAgent())
}
