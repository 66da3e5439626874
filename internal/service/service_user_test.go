// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicket-proxy/wicket/internal/cache"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/internal/utils"
)

func newTestUserService(t *testing.T) (UserService, SessionService, *fakeUserRepository) {
	t.Helper()

	repo := newFakeUserRepository()
	sessions := NewSessionService(cache.NewMemory(), utils.NewCodec("test-secret"), logger.Nop())
	users := NewUserService(repo, sessions, logger.Nop())
	return users, sessions, repo
}

func TestCreate_AssignsIDAndHashesPassword(t *testing.T) {
	users, _, _ := newTestUserService(t)

	user, err := users.Create(context.Background(), "John", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "john", user.Username)
	assert.NotEqual(t, "secret", user.HashedPassword)
	assert.True(t, utils.VerifyPassword("secret", user.HashedPassword))
}

func TestCreate_DuplicateUsername(t *testing.T) {
	users, _, _ := newTestUserService(t)

	_, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	_, err = users.Create(context.Background(), "john", "other")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestCreate_EmptyInput(t *testing.T) {
	users, _, _ := newTestUserService(t)

	_, err := users.Create(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = users.Create(context.Background(), "john", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGet_ReturnsUser(t *testing.T) {
	users, _, _ := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	found, err := users.Get(context.Background(), created.UserID)

	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "john", found.Username)
}

func TestGet_Unknown(t *testing.T) {
	users, _, _ := newTestUserService(t)

	_, err := users.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUpdatePassword_ChangesHash(t *testing.T) {
	users, _, repo := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	require.NoError(t, users.UpdatePassword(context.Background(), created.UserID, "new-secret"))

	stored, err := repo.FindByUsername(context.Background(), "john")
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword("new-secret", stored.HashedPassword))
	assert.False(t, utils.VerifyPassword("secret", stored.HashedPassword))
}

func TestDeactivate_RevokesSessionAndMovesUser(t *testing.T) {
	users, sessions, repo := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	token, err := sessions.Start(context.Background(), created.Claim())
	require.NoError(t, err)

	require.NoError(t, users.Deactivate(context.Background(), created.UserID))

	// Session is gone.
	alive, err := sessions.Alive(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, alive)

	// Account is no longer active.
	_, err = repo.FindByUsername(context.Background(), "john")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestReactivate_RestoresUser(t *testing.T) {
	users, _, repo := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	require.NoError(t, users.Deactivate(context.Background(), created.UserID))
	require.NoError(t, users.Reactivate(context.Background(), created.UserID))

	stored, err := repo.FindByUsername(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, stored.UserID)
}

func TestSearchByUsernames_CaseFolds(t *testing.T) {
	users, _, _ := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	found, err := users.SearchByUsernames(context.Background(), []string{"JOHN"})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.UserID, found[0].UserID)
}

func TestSearchByIDs_MissingIDsAreAbsent(t *testing.T) {
	users, _, _ := newTestUserService(t)

	created, err := users.Create(context.Background(), "john", "secret")
	require.NoError(t, err)

	found, err := users.SearchByIDs(context.Background(), []string{created.UserID, "ghost"})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.UserID, found[0].UserID)
}

func TestUserProbe(t *testing.T) {
	users, _, repo := newTestUserService(t)

	assert.NoError(t, users.Probe(context.Background()))

	repo.err = store.ErrExecutingQuery
	assert.Error(t, users.Probe(context.Background()))
}
