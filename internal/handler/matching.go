// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"cmp"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/app"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

func (h *Handler) runMatching(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, ok := h.userFromRequest(w, r)
	if !ok {
		return
	}
	h.writeMatches(w, user, req.Filters, req.TopK)
}

func (h *Handler) myMatches(w http.ResponseWriter, r *http.Request) {
	var details []utils.FieldDetail
	topK := queryInt(r.URL.Query(), "top_k", models.DefaultTopK, &details)
	if len(details) > 0 {
		utils.WriteFieldDetails(w, details, http.StatusUnprocessableEntity)
		return
	}

	user, ok := h.userFromRequest(w, r)
	if !ok {
		return
	}
	h.writeMatches(w, user, nil, topK)
}

func (h *Handler) writeMatches(w http.ResponseWriter, user models.User, filters *models.SearchFilters, topK int) {
	start := time.Now()
	if topK <= 0 {
		topK = models.DefaultTopK
	}

	interests := profileKeywords(user)
	matches := h.directory.Professors(matchesFilters(filters))
	for i := range matches {
		score, explanation := scoreProfessor(matches[i], interests)
		matches[i].MatchScore = &score
		matches[i].MatchExplanation = &explanation
	}
	slices.SortStableFunc(matches, func(a, b models.Professor) int {
		return cmp.Compare(*b.MatchScore, *a.MatchScore)
	})

	result := models.MatchResult{
		UserID:  user.ID,
		Matches: matches[:min(topK, len(matches))],
	}
	result.TotalMatches = len(result.Matches)
	result.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000

	utils.WriteJSON(w, result, http.StatusOK)
}

// profileKeywords collects the lower-cased interests the score is based on.
func profileKeywords(u models.User) []string {
	var out []string
	for _, s := range append(slices.Clone(u.ResearchInterests), u.FieldOfStudy) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// scoreProfessor weighs the professor's concepts that overlap the user's
// interests against all of the professor's concepts. The result is in [0,1].
func scoreProfessor(p models.Professor, interests []string) (float64, models.MatchExplanation) {
	explanation := models.MatchExplanation{MatchingConcepts: []string{}, CommonKeywords: []string{}}

	var total, matched float64
	for _, c := range p.Concepts {
		total += c.Score
		for _, interest := range interests {
			if containsFold(c.DisplayName, interest) || containsFold(interest, c.DisplayName) {
				matched += c.Score
				explanation.MatchingConcepts = append(explanation.MatchingConcepts, c.DisplayName)
				break
			}
		}
	}
	for _, interest := range interests {
		if containsFold(p.ResearchSummary, interest) {
			explanation.CommonKeywords = append(explanation.CommonKeywords, interest)
		}
	}

	if total == 0 {
		return 0, explanation
	}
	score := math.Round(matched/total*1000) / 1000
	explanation.SimilarityScore = score
	return score, explanation
}
