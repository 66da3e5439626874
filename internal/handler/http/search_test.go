// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicket-proxy/wicket/models"
)

func postSearch(t *testing.T, serverURL string, form url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := http.Post(
		serverURL+"/auth/users/search",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(raw)
}

func TestSearchEndpoint_BothKeysRejected(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := postSearch(t, env.server.URL, url.Values{
		"username": {"testuser"},
		"user_id":  {"asdf"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot search with both 'user_id' and 'username'. Please choose one.", strings.TrimSpace(body))
}

func TestSearchEndpoint_EmptyRequest(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := postSearch(t, env.server.URL, url.Values{})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"results": []}`, body)
}

func TestSearchEndpoint_UnknownIDReportedAsError(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := postSearch(t, env.server.URL, url.Values{
		"user_id": {"unknown-id"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	assert.Empty(t, result.Results)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Unable to find user_id", result.Errors[0].Message)
	assert.Equal(t, "user_id", result.Errors[0].Key)
	assert.Equal(t, "unknown-id", result.Errors[0].Value)
}

func TestSearchEndpoint_ByIDsPartialMatch(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.createTestUser(t, "john", "secret")

	resp, body := postSearch(t, env.server.URL, url.Values{
		"user_id": {user.UserID, "ghost"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	require.Len(t, result.Results, 1)
	assert.Equal(t, user.UserID, result.Results[0].UserID)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Unable to find user_id", result.Errors[0].Message)
	assert.Equal(t, "user_id", result.Errors[0].Key)
	assert.Equal(t, "ghost", result.Errors[0].Value)
}

func TestSearchEndpoint_ByUsernames(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.createTestUser(t, "john", "secret")
	env.createTestUser(t, "jane", "secret")

	resp, body := postSearch(t, env.server.URL, url.Values{
		"username": {"JOHN", "nobody"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	require.Len(t, result.Results, 1)
	assert.Equal(t, user.UserID, result.Results[0].UserID)
	assert.Equal(t, "john", result.Results[0].Username)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Unable to find username", result.Errors[0].Message)
	assert.Equal(t, "username", result.Errors[0].Key)
	assert.Equal(t, "nobody", result.Errors[0].Value)
}

func TestSearchEndpoint_MalformedBody(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := http.Post(
		env.server.URL+"/auth/users/search",
		"application/x-www-form-urlencoded",
		strings.NewReader("user_id=%zz"),
	)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
