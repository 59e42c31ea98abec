// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultTopK is the number of matches requested when the caller does not
// specify one.
const DefaultTopK = 50

// MatchRequest is the body of POST /api/v1/matching/. All fields are optional:
// without UserID the backend matches the authenticated user.
type MatchRequest struct {
	UserID  *int64         `json:"user_id,omitempty"`
	Filters *SearchFilters `json:"filters,omitempty"`
	TopK    int            `json:"top_k,omitempty"`
}

// MatchResult is returned by both matching endpoints.
type MatchResult struct {
	UserID           int64       `json:"user_id"`
	Matches          []Professor `json:"matches"`
	TotalMatches     int         `json:"total_matches"`
	ProcessingTimeMS float64     `json:"processing_time_ms"`
}
