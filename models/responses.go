// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package models

// LoginResponse is the JSON body returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserPayload is the JSON shape returned for a single user by
// GET /auth/users/{id}, GET /auth/users/me and inside search results.
type UserPayload struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// SearchError describes a single search key that produced no match.
type SearchError struct {
	// Message is "Unable to find user_id" or "Unable to find username".
	Message string `json:"message"`

	// Key is the search key kind: "user_id" or "username".
	Key string `json:"key"`

	// Value is the key value that could not be resolved.
	Value string `json:"value"`
}

// SearchResponse is the JSON body returned by POST /auth/users/search.
// Results and Errors are omitted from the payload when empty.
type SearchResponse struct {
	Results []UserPayload `json:"results,omitempty"`
	Errors  []SearchError `json:"errors,omitempty"`
}
