// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/models"
)

type searchService struct {
	api adapter.API
}

func NewSearchService(api adapter.API) SearchService {
	return &searchService{api: api}
}

func (s *searchService) Search(ctx context.Context, query models.SearchQuery) (models.SearchResult, error) {
	var result models.SearchResult
	if err := s.api.Post(ctx, PathSearch, query, &result); err != nil {
		return models.SearchResult{}, err
	}
	return result, nil
}

func (s *searchService) Professor(ctx context.Context, id string) (models.Professor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Professor{}, adapter.NewValidationError("Professor id is required",
			adapter.FieldError{Field: "id", Message: "Professor id is required"})
	}

	var professor models.Professor
	if err := s.api.Get(ctx, PathProfessors+url.PathEscape(id), nil, &professor); err != nil {
		return models.Professor{}, err
	}
	return professor, nil
}

func (s *searchService) Professors(ctx context.Context, filter models.ProfessorFilter) ([]models.Professor, error) {
	var professors []models.Professor
	if err := s.api.Get(ctx, PathProfessors, professorQuery(filter), &professors); err != nil {
		return nil, err
	}
	return professors, nil
}

// professorQuery omits zero and empty values so the backend defaults apply.
func professorQuery(f models.ProfessorFilter) url.Values {
	q := url.Values{}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.University != "" {
		q.Set("university", f.University)
	}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.MinWorks > 0 {
		q.Set("min_works", strconv.Itoa(f.MinWorks))
	}
	return q
}
