// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID reuses the client's X-Request-ID when it is a valid UUID and
// generates one otherwise. The id is echoed back and a request-scoped logger
// is put into the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if !utils.IsRequestID(requestID) {
			requestID = h.requestIDs.Next()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := utils.WithRequestID(l.WithContext(r.Context()), requestID)

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
