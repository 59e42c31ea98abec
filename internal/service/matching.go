// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/models"
)

type matchingService struct {
	api adapter.API
}

func NewMatchingService(api adapter.API) MatchingService {
	return &matchingService{api: api}
}

func (m *matchingService) FindMatches(ctx context.Context, req models.MatchRequest) (models.MatchResult, error) {
	var result models.MatchResult
	if err := m.api.Post(ctx, PathMatching, req, &result); err != nil {
		return models.MatchResult{}, err
	}
	return result, nil
}

func (m *matchingService) MyMatches(ctx context.Context, topK int) (models.MatchResult, error) {
	if topK <= 0 {
		topK = models.DefaultTopK
	}

	var result models.MatchResult
	query := url.Values{"top_k": {strconv.Itoa(topK)}}
	if err := m.api.Get(ctx, PathMyMatches, query, &result); err != nil {
		return models.MatchResult{}, err
	}
	return result, nil
}
