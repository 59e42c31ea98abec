// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Backend REST endpoints, relative to the adapter base URL.
const (
	PathLogin        = "/api/v1/auth/login"
	PathRegister     = "/api/v1/auth/register"
	PathTestToken    = "/api/v1/auth/test-token"
	PathCurrentUser  = "/api/v1/users/me"
	PathUploadResume = "/api/v1/users/upload-resume"
	PathSearch       = "/api/v1/search/"
	PathProfessors   = "/api/v1/professors/"
	PathMatching     = "/api/v1/matching/"
	PathMyMatches    = "/api/v1/matching/me"
)
