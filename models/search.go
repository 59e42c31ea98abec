// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchFilters narrows a search or a matching run.
type SearchFilters struct {
	University    string   `json:"university,omitempty"`
	Country       string   `json:"country,omitempty"`
	City          string   `json:"city,omitempty"`
	Concepts      []string `json:"concepts,omitempty"`
	MinWorksCount *int     `json:"min_works_count,omitempty"`
	MinCitations  *int     `json:"min_citations,omitempty"`
}

// SearchQuery is the body of POST /api/v1/search/.
type SearchQuery struct {
	Query   string         `json:"query,omitempty"`
	Filters *SearchFilters `json:"filters,omitempty"`
	Limit   int            `json:"limit,omitempty"`
	Offset  int            `json:"offset,omitempty"`
}

// SearchResult is the response of POST /api/v1/search/.
type SearchResult struct {
	Professors  []Professor `json:"professors"`
	TotalCount  int         `json:"total_count"`
	QueryTimeMS float64     `json:"query_time_ms"`
}

// HasMore reports whether more results exist past the current page.
func (r SearchResult) HasMore(offset int) bool {
	return offset+len(r.Professors) < r.TotalCount
}

// ProfessorFilter holds the query parameters of GET /api/v1/professors/.
// Zero values are not sent.
type ProfessorFilter struct {
	Skip       int
	Limit      int
	University string
	Country    string
	MinWorks   int
}
