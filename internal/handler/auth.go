// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/shayar/PhdMatcher-FE/internal/app"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if details := requiredFields("body", map[string]string{"username": username, "password": password}, "username", "password"); len(details) > 0 {
		utils.WriteFieldDetails(w, details, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.directory.Authenticate(username, password)
	if err != nil {
		log.Info().Msg("invalid login/password")
		utils.WriteDetail(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	h.writeToken(w, r, user, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	details := requiredFields("body", map[string]string{
		"email":     req.Email,
		"password":  req.Password,
		"full_name": req.FullName,
	}, "email", "password", "full_name")
	if req.Email != "" {
		if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
			details = append(details, utils.FieldDetail{Loc: []string{"body", "email"}, Msg: app.MsgInvalidEmail, Type: "value_error.email"})
		}
	}
	if len(details) > 0 {
		utils.WriteFieldDetails(w, details, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.directory.CreateUser(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			log.Info().Msg("email already registered")
			utils.WriteDetail(w, app.MsgEmailAlreadyRegistered, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user registration")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user registered")
	h.writeToken(w, r, user, http.StatusCreated)
}

func (h *Handler) testToken(w http.ResponseWriter, r *http.Request) {
	h.currentUser(w, r)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := utils.GenerateJWTToken(TokenIssuer, strconv.FormatInt(user.ID, 10), h.tokenTTL, h.signKey)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{AccessToken: token, TokenType: "bearer"}, status)
}

// requiredFields reports every name in order whose value is blank.
func requiredFields(location string, values map[string]string, order ...string) []utils.FieldDetail {
	var details []utils.FieldDetail
	for _, name := range order {
		if strings.TrimSpace(values[name]) == "" {
			details = append(details, utils.FieldDetail{
				Loc:  []string{location, name},
				Msg:  app.MsgFieldRequired,
				Type: "value_error.missing",
			})
		}
	}
	return details
}
