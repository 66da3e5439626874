// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/utils"
	"github.com/wicket-proxy/wicket/models"
)

// searchUsers answers a batch lookup by user id or by username.
//
// The body is form-encoded with repeated "user_id" and/or "username" keys,
// like the rest of the form surface. Requests naming both keys are rejected
// outright. Keys that match nothing do not fail the request; each one is
// reported individually in the errors list so one unknown id never hides
// the other results.
func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed search form body")
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	userIDs := r.PostForm["user_id"]
	usernames := r.PostForm["username"]

	if len(userIDs) > 0 && len(usernames) > 0 {
		http.Error(w, "Cannot search with both 'user_id' and 'username'. Please choose one.", http.StatusBadRequest)
		return
	}

	if len(userIDs) == 0 && len(usernames) == 0 {
		// The empty result list is serialized explicitly: consumers rely
		// on the "results" key being present.
		utils.WriteJSON(w, struct {
			Results []models.UserPayload `json:"results"`
		}{Results: []models.UserPayload{}}, http.StatusOK)
		return
	}

	var response models.SearchResponse
	var err error
	if len(userIDs) > 0 {
		response, err = h.searchByIDs(ctx, userIDs)
	} else {
		response, err = h.searchByUsernames(ctx, usernames)
	}
	if err != nil {
		log.Err(err).Msg("user search failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) searchByIDs(ctx context.Context, userIDs []string) (models.SearchResponse, error) {
	users, err := h.services.UserService.SearchByIDs(ctx, userIDs)
	if err != nil {
		return models.SearchResponse{}, err
	}

	found := make(map[string]models.User, len(users))
	for _, u := range users {
		found[u.UserID] = u
	}

	var response models.SearchResponse
	for _, id := range userIDs {
		u, ok := found[id]
		if !ok {
			response.Errors = append(response.Errors, models.SearchError{
				Message: "Unable to find user_id",
				Key:     "user_id",
				Value:   id,
			})
			continue
		}
		response.Results = append(response.Results, models.UserPayload{Username: u.Username, UserID: u.UserID})
	}

	return response, nil
}

func (h *Handler) searchByUsernames(ctx context.Context, usernames []string) (models.SearchResponse, error) {
	users, err := h.services.UserService.SearchByUsernames(ctx, usernames)
	if err != nil {
		return models.SearchResponse{}, err
	}

	found := make(map[string]models.User, len(users))
	for _, u := range users {
		found[u.Username] = u
	}

	var response models.SearchResponse
	for _, name := range usernames {
		u, ok := found[strings.ToLower(name)]
		if !ok {
			response.Errors = append(response.Errors, models.SearchError{
				Message: "Unable to find username",
				Key:     "username",
				Value:   name,
			})
			continue
		}
		response.Results = append(response.Results, models.UserPayload{Username: u.Username, UserID: u.UserID})
	}

	return response, nil
}
