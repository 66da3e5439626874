// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/internal/utils"
)

// authService is the concrete implementation of AuthService. It verifies
// credentials against the user store and hands session creation to the
// SessionService.
type authService struct {
	userRepository store.UserRepository
	sessions       SessionService
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and SessionService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessions SessionService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		logger:         logger,
	}
}

// Login authenticates the username/password pair and starts a session.
//
// The username is case-folded before lookup; only accounts in the active
// partition can authenticate. Unknown usernames, wrong passwords and
// deactivated accounts all collapse to ErrInvalidCredentials — the audit
// trail in the log keeps the distinction, the caller does not.
func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := a.userRepository.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup for login failed")
		return "", ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, user.HashedPassword) {
		log.Error().Str("username", username).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.Start(ctx, user.Claim())
	if err != nil {
		log.Err(err).Str("username", username).Msg("session start failed")
		return "", fmt.Errorf("session start failed: %w", err)
	}

	return token, nil
}

// Logout revokes the user's session.
func (a *authService) Logout(ctx context.Context, userID string) error {
	return a.sessions.Revoke(ctx, userID)
}
