// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package store

import (
	"context"

	"github.com/wicket-proxy/wicket/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Usernames are stored lower-cased; callers are expected to case-fold before
// querying. Accounts live in one of two partitions — active or deactivated —
// and a username is unique within each partition.
type UserRepository interface {
	// CreateUser inserts a new account into the active partition.
	// Returns ErrUsernameTaken when the username already exists there.
	CreateUser(ctx context.Context, user models.User) error

	// FindByUsername returns the active account with the given username,
	// or ErrNoUserWasFound.
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// UpdatePassword replaces the stored password hash of an active account.
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error

	// SearchByIDs returns the active accounts matching any of the given ids.
	// Missing ids are simply absent from the result.
	SearchByIDs(ctx context.Context, userIDs []string) ([]models.User, error)

	// SearchByUsernames returns the active accounts matching any of the
	// given usernames. Missing names are simply absent from the result.
	SearchByUsernames(ctx context.Context, usernames []string) ([]models.User, error)

	// DeactivateUser atomically moves an account from the active partition
	// to the deactivated partition.
	DeactivateUser(ctx context.Context, userID string) error

	// ReactivateUser atomically moves an account from the deactivated
	// partition back to the active partition.
	ReactivateUser(ctx context.Context, userID string) error
}
