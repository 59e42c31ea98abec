// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler implements a development backend for the PhD Matcher
// REST API on top of chi.
//
// It serves the same endpoints, request shapes and FastAPI-style error
// bodies ({"detail": "..."} or {"detail": [{"loc": [...], "msg": "..."}]})
// as the production backend, backed by an in-memory [Directory]. The client
// end-to-end tests run against it, and cmd/server exposes it for local
// development.
//
// Routes:
//
//	POST /api/v1/auth/login            form username, password
//	POST /api/v1/auth/register         RegisterRequest
//	POST /api/v1/auth/test-token       (bearer)
//	GET  /api/v1/users/me              (bearer)
//	PUT  /api/v1/users/me              (bearer) ProfileUpdate
//	POST /api/v1/users/upload-resume   (bearer) multipart "file"
//	POST /api/v1/search/               SearchQuery
//	GET  /api/v1/professors/           skip, limit, university, country, min_works
//	GET  /api/v1/professors/{id}
//	POST /api/v1/matching/             (bearer) MatchRequest
//	GET  /api/v1/matching/me           (bearer) top_k
package handler
