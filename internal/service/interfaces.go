// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"context"

	"github.com/wicket-proxy/wicket/models"
)

// SessionService owns the token<->identity binding in the shared session
// cache. Sessions are keyed twice: token -> claim JSON, and user id -> token.
// The double keying makes login idempotent and revocation a constant-time
// operation.
type SessionService interface {
	// Start binds claim to a bearer token and returns it. When the user
	// already holds a live session the existing token is returned unchanged.
	Start(ctx context.Context, claim models.Claim) (string, error)

	// Resolve parses an Authorization-style value, verifies the token
	// envelope, and confirms the session is live and consistent with the
	// cached identity. Every failure is ErrUnauthorized.
	Resolve(ctx context.Context, authorization string) (models.Claim, string, error)

	// Alive reports whether the token still has a live session entry.
	Alive(ctx context.Context, token string) (bool, error)

	// Revoke ends the session of the given user, deleting both cache keys.
	// Revoking a user with no session is not an error.
	Revoke(ctx context.Context, userID string) error

	// Probe verifies the session cache is reachable by writing and deleting
	// a throwaway key.
	Probe(ctx context.Context) error
}

// AuthService verifies credentials and drives the session lifecycle.
type AuthService interface {
	// Login authenticates the username/password pair and returns a bearer
	// token for the account. Every failure mode collapses to
	// ErrInvalidCredentials so callers leak nothing about which part failed.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout revokes the session of the given user.
	Logout(ctx context.Context, userID string) error
}

// UserService manages user accounts in the persistent store.
type UserService interface {
	// Create registers a new account and returns it with a fresh user id.
	// Returns store.ErrUsernameTaken when the username is already active.
	Create(ctx context.Context, username, password string) (models.User, error)

	// Get returns the active account with the given id, or
	// store.ErrNoUserWasFound.
	Get(ctx context.Context, userID string) (models.User, error)

	// UpdatePassword replaces the account password. Existing sessions stay
	// valid.
	UpdatePassword(ctx context.Context, userID, password string) error

	// Deactivate revokes the user's session and moves the account to the
	// deactivated partition.
	Deactivate(ctx context.Context, userID string) error

	// Reactivate moves the account back to the active partition.
	Reactivate(ctx context.Context, userID string) error

	// SearchByIDs returns the active accounts matching the given ids.
	SearchByIDs(ctx context.Context, userIDs []string) ([]models.User, error)

	// SearchByUsernames returns the active accounts matching the given
	// usernames (case-folded before querying).
	SearchByUsernames(ctx context.Context, usernames []string) ([]models.User, error)

	// Probe verifies the user store is reachable with a cheap no-match
	// search.
	Probe(ctx context.Context) error
}
