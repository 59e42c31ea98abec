// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/mock"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	svc := NewSearchService(api)
	ctx := context.Background()

	query := models.SearchQuery{Query: "machine learning", Limit: 20}
	want := models.SearchResult{
		Professors: []models.Professor{{OpenAlexID: "A1", Name: "Grace Hopper"}},
		TotalCount: 41,
	}
	api.EXPECT().Post(ctx, PathSearch, query, gomock.Any()).DoAndReturn(returnJSON(want))

	got, err := svc.Search(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_SearchPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	svc := NewSearchService(api)

	backendErr := &adapter.Error{Kind: adapter.KindTransport, Message: adapter.MsgTransport}
	api.EXPECT().Post(gomock.Any(), PathSearch, gomock.Any(), gomock.Any()).Return(backendErr)

	_, err := svc.Search(context.Background(), models.SearchQuery{})
	assert.Same(t, backendErr, err)
}

func TestSearchService_Professor(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	svc := NewSearchService(api)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/v1/professors/A%2F1", nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*models.Professor) = models.Professor{OpenAlexID: "A/1", Name: "Edsger Dijkstra"}
			return nil
		})

	p, err := svc.Professor(ctx, "A/1")
	require.NoError(t, err)
	assert.Equal(t, "Edsger Dijkstra", p.Name)
}

func TestSearchService_ProfessorEmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewSearchService(mock.NewMockAPI(ctrl))

	_, err := svc.Professor(context.Background(), "  ")
	assert.ErrorIs(t, err, adapter.ErrValidation)
}

func TestSearchService_ProfessorsOmitsZeroFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter models.ProfessorFilter
		want   url.Values
	}{
		{"empty", models.ProfessorFilter{}, url.Values{}},
		{
			name:   "all set",
			filter: models.ProfessorFilter{Skip: 20, Limit: 10, University: "MIT", Country: "US", MinWorks: 5},
			want: url.Values{
				"skip": {"20"}, "limit": {"10"}, "university": {"MIT"}, "country": {"US"}, "min_works": {"5"},
			},
		},
		{"country only", models.ProfessorFilter{Country: "DE"}, url.Values{"country": {"DE"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock.NewMockAPI(ctrl)
			svc := NewSearchService(api)

			api.EXPECT().Get(gomock.Any(), PathProfessors, tt.want, gomock.Any()).Return(nil)

			_, err := svc.Professors(context.Background(), tt.filter)
			require.NoError(t, err)
		})
	}
}
