// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Professor is a researcher record as served by the search, professors, and
// matching endpoints. MatchScore and MatchExplanation are only populated in
// matching results.
type Professor struct {
	OpenAlexID       string            `json:"openalex_id"`
	Name             string            `json:"name"`
	DisplayName      string            `json:"display_name,omitempty"`
	InstitutionID    string            `json:"institution_id,omitempty"`
	InstitutionName  string            `json:"institution_name,omitempty"`
	WorksCount       int               `json:"works_count"`
	CitedByCount     int               `json:"cited_by_count"`
	HIndex           int               `json:"h_index"`
	I10Index         int               `json:"i10_index"`
	Concepts         []ConceptScore    `json:"concepts,omitempty"`
	ResearchSummary  string            `json:"research_summary,omitempty"`
	ORCID            string            `json:"orcid,omitempty"`
	HomepageURL      string            `json:"homepage_url,omitempty"`
	MatchScore       *float64          `json:"match_score,omitempty"`
	MatchExplanation *MatchExplanation `json:"match_explanation,omitempty"`
}

// Title returns DisplayName when present, otherwise Name.
func (p Professor) Title() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// ConceptScore is one OpenAlex concept attached to a professor.
type ConceptScore struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Level       int     `json:"level"`
	Score       float64 `json:"score"`
}

// MatchExplanation describes why a professor was matched to the user.
type MatchExplanation struct {
	SimilarityScore  float64  `json:"similarity_score"`
	MatchingConcepts []string `json:"matching_concepts"`
	CommonKeywords   []string `json:"common_keywords"`
}

// Institution is a university or research organisation record.
type Institution struct {
	OpenAlexID  string `json:"openalex_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Type        string `json:"type,omitempty"`
	HomepageURL string `json:"homepage_url,omitempty"`
	WorksCount  int    `json:"works_count"`
}
