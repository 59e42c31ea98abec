// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withRequestID, h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)

		r.Post("/search/", h.search)
		r.Get("/professors/", h.listProfessors)
		r.Get("/professors/{id}", h.getProfessor)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/test-token", h.testToken)
			r.Get("/users/me", h.currentUser)
			r.Put("/users/me", h.updateCurrentUser)
			r.Post("/users/upload-resume", h.uploadResume)
			r.Post("/matching/", h.runMatching)
			r.Get("/matching/me", h.myMatches)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}
