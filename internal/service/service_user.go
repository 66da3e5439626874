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
	"github.com/wicket-proxy/wicket/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	sessions       SessionService
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given UserRepository.
// The SessionService is needed so deactivation can revoke the account's
// session in the same call.
func NewUserService(userRepository store.UserRepository, sessions SessionService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessions:       sessions,
		logger:         logger,
	}
}

// Create registers a new account. The username is case-folded before storage
// so lookups stay case-insensitive, and the password is hashed before it
// ever reaches the repository.
func (u *userService) Create(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:         utils.NewUserID(),
		Username:       strings.ToLower(username),
		HashedPassword: hashed,
	}

	if err := u.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Get returns the active account with the given id.
func (u *userService) Get(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	users, err := u.userRepository.SearchByIDs(ctx, []string{userID})
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if len(users) == 0 {
		return models.User{}, store.ErrNoUserWasFound
	}

	return users[0], nil
}

// UpdatePassword replaces the account password hash. The session, if any,
// stays valid: a password change is not a revocation.
func (u *userService) UpdatePassword(ctx context.Context, userID, password string) error {
	log := logger.FromContext(ctx)

	if userID == "" || password == "" {
		return ErrInvalidDataProvided
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := u.userRepository.UpdatePassword(ctx, userID, hashed); err != nil {
		log.Err(err).Str("userID", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// Deactivate revokes the session first and then moves the account out of the
// active partition. The ordering matters: once this returns, the old token
// no longer authenticates anywhere.
func (u *userService) Deactivate(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := u.sessions.Revoke(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	if err := u.userRepository.DeactivateUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("user deactivation failed")
		return fmt.Errorf("user deactivation failed: %w", err)
	}

	return nil
}

// Reactivate moves the account back to the active partition. The user logs
// in again to get a fresh session.
func (u *userService) Reactivate(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.ReactivateUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("user reactivation failed")
		return fmt.Errorf("user reactivation failed: %w", err)
	}

	return nil
}

// SearchByIDs returns the active accounts matching the given ids.
func (u *userService) SearchByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	users, err := u.userRepository.SearchByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return users, nil
}

// SearchByUsernames returns the active accounts matching the given
// usernames, case-folded.
func (u *userService) SearchByUsernames(ctx context.Context, usernames []string) ([]models.User, error) {
	folded := make([]string, len(usernames))
	for i, name := range usernames {
		folded[i] = strings.ToLower(name)
	}

	users, err := u.userRepository.SearchByUsernames(ctx, folded)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return users, nil
}

// Probe runs a search that is guaranteed to match nothing. It exercises the
// full query path without touching real accounts.
func (u *userService) Probe(ctx context.Context) error {
	if _, err := u.userRepository.SearchByUsernames(ctx, []string{utils.NewProbeKey()}); err != nil {
		return fmt.Errorf("user store probe failed: %w", err)
	}

	return nil
}
