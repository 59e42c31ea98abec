// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shayar/PhdMatcher-FE/internal/app"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
	defaultListLimit   = 100
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	start := time.Now()

	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)
	offset := max(query.Offset, 0)

	terms := strings.Fields(strings.ToLower(query.Query))
	keepFilters := matchesFilters(query.Filters)
	found := h.directory.Professors(func(p models.Professor, inst models.Institution) bool {
		return keepFilters(p, inst) && matchesTerms(p, terms)
	})

	result := models.SearchResult{
		Professors: page(found, offset, limit),
		TotalCount: len(found),
	}
	result.QueryTimeMS = float64(time.Since(start).Microseconds()) / 1000

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listProfessors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var details []utils.FieldDetail
	skip := queryInt(q, "skip", 0, &details)
	limit := queryInt(q, "limit", defaultListLimit, &details)
	minWorks := queryInt(q, "min_works", 0, &details)
	if len(details) > 0 {
		utils.WriteFieldDetails(w, details, http.StatusUnprocessableEntity)
		return
	}

	filters := &models.SearchFilters{
		University: q.Get("university"),
		Country:    q.Get("country"),
	}
	if minWorks > 0 {
		filters.MinWorksCount = &minWorks
	}

	found := h.directory.Professors(matchesFilters(filters))
	utils.WriteJSON(w, page(found, skip, limit), http.StatusOK)
}

func (h *Handler) getProfessor(w http.ResponseWriter, r *http.Request) {
	p, err := h.directory.Professor(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteDetail(w, app.MsgProfessorNotFound, http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, p, http.StatusOK)
}

// matchesFilters returns a predicate applying every set filter.
func matchesFilters(f *models.SearchFilters) func(models.Professor, models.Institution) bool {
	return func(p models.Professor, inst models.Institution) bool {
		if f == nil {
			return true
		}
		if f.University != "" && !containsFold(p.InstitutionName, f.University) && !containsFold(inst.DisplayName, f.University) {
			return false
		}
		if f.Country != "" && !strings.EqualFold(inst.Country, f.Country) && !strings.EqualFold(inst.CountryCode, f.Country) {
			return false
		}
		if f.City != "" && !strings.EqualFold(inst.City, f.City) {
			return false
		}
		if f.MinWorksCount != nil && p.WorksCount < *f.MinWorksCount {
			return false
		}
		if f.MinCitations != nil && p.CitedByCount < *f.MinCitations {
			return false
		}
		for _, concept := range f.Concepts {
			if !hasConcept(p, concept) {
				return false
			}
		}
		return true
	}
}

// matchesTerms requires every term to appear in the name, summary or a
// concept of p.
func matchesTerms(p models.Professor, terms []string) bool {
	for _, term := range terms {
		if !containsFold(p.Name, term) && !containsFold(p.DisplayName, term) &&
			!containsFold(p.ResearchSummary, term) && !hasConcept(p, term) {
			return false
		}
	}
	return true
}

func hasConcept(p models.Professor, name string) bool {
	for _, c := range p.Concepts {
		if containsFold(c.DisplayName, name) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func page(items []models.Professor, offset, limit int) []models.Professor {
	if offset >= len(items) {
		return []models.Professor{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// queryInt parses a non-negative integer parameter, recording a field detail
// when it is malformed.
func queryInt(q url.Values, name string, def int, details *[]utils.FieldDetail) int {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		*details = append(*details, utils.FieldDetail{
			Loc:  []string{"query", name},
			Msg:  "value is not a valid non-negative integer",
			Type: "type_error.integer",
		})
		return def
	}
	return v
}
