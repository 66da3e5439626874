// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"net/http"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/utils"
	"github.com/wicket-proxy/wicket/models"
)

// login authenticates a username/password pair and answers the bearer token.
//
// Credentials arrive form-encoded. Every failure — unknown user, wrong
// password, deactivated account — answers a blanket 401 so the response
// never reveals which part was wrong; the log keeps the distinction.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("login rejected")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{AccessToken: token}, http.StatusOK)
}

// logout ends the caller's session. The token presented in the request stops
// authenticating immediately, on every replica sharing the session cache.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claim, ok := utils.ClaimFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, claim.UserID); err != nil {
		log.Err(err).Str("userID", claim.UserID).Msg("logout failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
