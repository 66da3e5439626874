// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/service"
	"github.com/wicket-proxy/wicket/internal/utils"
)

// bearer is the HTTP middleware that enforces session-backed bearer
// authentication.
//
// It resolves the "Authorization" header through the session service and —
// on success — stores the authenticated claim and the raw token in the
// request context under [utils.ClaimCtxKey] and [utils.TokenCtxKey] before
// delegating to the next handler.
//
// Every authentication failure answers 401; only an unreachable session
// cache answers 500.
func (h *Handler) bearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		claim, token, err := h.services.SessionService.Resolve(ctx, r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Err(err).Msg("request rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("session resolution failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimCtxKey, claim)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
