// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shayar/PhdMatcher-FE/internal/app"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
)

// auth accepts requests carrying a valid bearer token of an active user and
// stores the user id in the context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("missing bearer token")
			unauthorized(w, app.MsgCouldNotValidateCredentials)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, TokenIssuer)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			unauthorized(w, app.MsgCouldNotValidateCredentials)
			return
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			log.Debug().Err(err).Str("subject", subject).Msg("token subject is not a user id")
			unauthorized(w, app.MsgCouldNotValidateCredentials)
			return
		}

		user, err := h.directory.User(userID)
		if err != nil {
			utils.WriteDetail(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}
		if !user.IsActive {
			utils.WriteDetail(w, app.MsgInactiveUser, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, detail, http.StatusUnauthorized)
}
