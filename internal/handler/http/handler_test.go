// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wicket-proxy/wicket/internal/cache"
	"github.com/wicket-proxy/wicket/internal/config"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/service"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/internal/utils"
	"github.com/wicket-proxy/wicket/models"
)

// stubRepo is an in-memory store.UserRepository for handler tests. A non-nil
// err fails every call.
type stubRepo struct {
	mu          sync.Mutex
	active      map[string]models.User
	deactivated map[string]models.User
	err         error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		active:      make(map[string]models.User),
		deactivated: make(map[string]models.User),
	}
}

func (s *stubRepo) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, u := range s.active {
		if u.Username == user.Username {
			return store.ErrUsernameTaken
		}
	}
	s.active[user.UserID] = user
	return nil
}

func (s *stubRepo) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.User{}, s.err
	}
	for _, u := range s.active {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (s *stubRepo) UpdatePassword(_ context.Context, userID, hashedPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	u, ok := s.active[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.HashedPassword = hashedPassword
	s.active[userID] = u
	return nil
}

func (s *stubRepo) SearchByIDs(_ context.Context, userIDs []string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var found []models.User
	for _, id := range userIDs {
		if u, ok := s.active[id]; ok {
			found = append(found, u)
		}
	}
	return found, nil
}

func (s *stubRepo) SearchByUsernames(_ context.Context, usernames []string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var found []models.User
	for _, name := range usernames {
		for _, u := range s.active {
			if u.Username == name {
				found = append(found, u)
			}
		}
	}
	return found, nil
}

func (s *stubRepo) DeactivateUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	u, ok := s.active[userID]
	if !ok {
		return store.ErrExecutingQuery
	}
	delete(s.active, userID)
	s.deactivated[userID] = u
	return nil
}

func (s *stubRepo) ReactivateUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	u, ok := s.deactivated[userID]
	if !ok {
		return store.ErrExecutingQuery
	}
	delete(s.deactivated, userID)
	s.active[userID] = u
	return nil
}

// downCache fails every operation, simulating an unreachable session cache.
type downCache struct{}

func (downCache) Get(context.Context, string) (string, error) {
	return "", errors.New("cache is down")
}
func (downCache) Set(context.Context, string, string) error { return errors.New("cache is down") }
func (downCache) Del(context.Context, ...string) error      { return errors.New("cache is down") }

// testEnv bundles everything a handler test needs: the handler mounted on a
// test server, the backing services, and the raw fakes for injection.
type testEnv struct {
	handler  *Handler
	services *service.Services
	repo     *stubRepo
	sessions *cache.Memory
	server   *httptest.Server
}

func defaultTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Proxy: config.Proxy{
			ProxiedHost:  "upstream.invalid",
			AllowedHosts: []string{"localhost", "127.0.0.1"},
		},
		App: config.App{SigningSecret: "test-secret"},
	}
}

func newTestEnv(t *testing.T, cfg *config.StructuredConfig) *testEnv {
	t.Helper()

	repo := newStubRepo()
	sessions := cache.NewMemory()
	return newTestEnvWith(t, cfg, repo, sessions)
}

func newTestEnvWith(t *testing.T, cfg *config.StructuredConfig, repo store.UserRepository, sessions cache.Cache) *testEnv {
	t.Helper()

	if cfg == nil {
		cfg = defaultTestConfig()
	}

	log := logger.Nop()
	sessionService := service.NewSessionService(sessions, utils.NewCodec(cfg.App.SigningSecret), log)
	services := &service.Services{
		SessionService: sessionService,
		AuthService:    service.NewAuthService(repo, sessionService, log),
		UserService:    service.NewUserService(repo, sessionService, log),
	}

	handler, err := NewHandler(services, cfg, log)
	require.NoError(t, err)

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)

	env := &testEnv{
		handler:  handler,
		services: services,
		server:   server,
	}
	if r, ok := repo.(*stubRepo); ok {
		env.repo = r
	}
	if m, ok := sessions.(*cache.Memory); ok {
		env.sessions = m
	}
	return env
}

// createTestUser provisions an account directly through the service layer.
func (env *testEnv) createTestUser(t *testing.T, username, password string) models.User {
	t.Helper()

	user, err := env.services.UserService.Create(context.Background(), username, password)
	require.NoError(t, err)
	return user
}

// loginTestUser logs the user in and returns the bearer token.
func (env *testEnv) loginTestUser(t *testing.T, username, password string) string {
	t.Helper()

	token, err := env.services.AuthService.Login(context.Background(), username, password)
	require.NoError(t, err)
	return token
}
