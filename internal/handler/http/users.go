// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/service"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/internal/utils"
	"github.com/wicket-proxy/wicket/models"
)

// createUser registers a new account from a form-encoded username/password
// pair. On success the fresh user id is exposed both in the USER_ID response
// header and in the JSON body.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.UserService.Create(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Str("username", username).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// Consumers scripting against the API read the id from the header
	// without parsing the body. The exact key casing is part of the
	// contract.
	w.Header()["USER_ID"] = []string{user.UserID}
	utils.WriteJSON(w, models.UserPayload{Username: user.Username, UserID: user.UserID}, http.StatusCreated)
}

// me answers the identity of the calling session.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claim, ok := utils.ClaimFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.Get(ctx, claim.UserID)
	if err != nil {
		log.Err(err).Str("userID", claim.UserID).Msg("user lookup failed")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.UserPayload{Username: user.Username, UserID: user.UserID}, http.StatusOK)
}

// getUser answers a single account by id.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	user, err := h.services.UserService.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Str("userID", userID).Msg("user lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserPayload{Username: user.Username, UserID: user.UserID}, http.StatusOK)
}

// updatePassword replaces the account password. The current session, if
// any, keeps working: changing a password is not a revocation.
func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")
	password := r.PostFormValue("password")

	if err := h.services.UserService.UpdatePassword(ctx, userID, password); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Str("userID", userID).Msg("password update failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// deactivateUser revokes the account's session and parks the account in the
// deactivated partition. The username stays reserved.
func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	if err := h.services.UserService.Deactivate(ctx, userID); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Str("userID", userID).Msg("user deactivation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// reactivateUser moves the account back to the active partition. No session
// is created; the user logs in again.
func (h *Handler) reactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	if err := h.services.UserService.Reactivate(ctx, userID); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Str("userID", userID).Msg("user reactivation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
