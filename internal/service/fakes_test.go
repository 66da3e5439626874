// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"context"
	"sync"

	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/models"
)

// fakeUserRepository is an in-memory store.UserRepository used by the
// service tests. Errors can be injected per call via the err field.
type fakeUserRepository struct {
	mu          sync.Mutex
	active      map[string]models.User // keyed by user id
	deactivated map[string]models.User
	err         error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		active:      make(map[string]models.User),
		deactivated: make(map[string]models.User),
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	for _, u := range f.active {
		if u.Username == user.Username {
			return store.ErrUsernameTaken
		}
	}
	f.active[user.UserID] = user
	return nil
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return models.User{}, f.err
	}
	for _, u := range f.active {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	u, ok := f.active[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.HashedPassword = hashedPassword
	f.active[userID] = u
	return nil
}

func (f *fakeUserRepository) SearchByIDs(_ context.Context, userIDs []string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	var found []models.User
	for _, id := range userIDs {
		if u, ok := f.active[id]; ok {
			found = append(found, u)
		}
	}
	return found, nil
}

func (f *fakeUserRepository) SearchByUsernames(_ context.Context, usernames []string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	var found []models.User
	for _, name := range usernames {
		for _, u := range f.active {
			if u.Username == name {
				found = append(found, u)
			}
		}
	}
	return found, nil
}

func (f *fakeUserRepository) DeactivateUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	u, ok := f.active[userID]
	if !ok {
		return store.ErrExecutingQuery
	}
	delete(f.active, userID)
	f.deactivated[userID] = u
	return nil
}

func (f *fakeUserRepository) ReactivateUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	u, ok := f.deactivated[userID]
	if !ok {
		return store.ErrExecutingQuery
	}
	delete(f.deactivated, userID)
	f.active[userID] = u
	return nil
}
