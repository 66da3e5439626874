// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It manages the "users" and "deactivated_users" partitions.
//
// Methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account into the active partition.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createUser, user.UserID, user.Username, user.HashedPassword)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrUsernameTaken
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// FindByUsername retrieves the active account with the given (already
// case-folded) username, or [ErrNoUserWasFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&user.UserID, &user.Username, &user.HashedPassword); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("username", username).Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces the stored password hash of an active account.
// Updating an absent account affects zero rows and is not an error,
// matching the partitioned lifecycle (the row may be deactivated).
func (r *userRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateUserPassword, hashedPassword, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error updating user password")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// SearchByIDs returns the active accounts matching any of the given ids.
func (r *userRepository) SearchByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	return r.searchUsers(ctx, "user_id", userIDs)
}

// SearchByUsernames returns the active accounts matching any of the given
// (already case-folded) usernames.
func (r *userRepository) SearchByUsernames(ctx context.Context, usernames []string) ([]models.User, error) {
	return r.searchUsers(ctx, "username", usernames)
}

func (r *userRepository) searchUsers(ctx context.Context, column string, values []string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if len(values) == 0 {
		return nil, nil
	}

	query, args, err := searchUsersQuery(column, values)
	if err != nil {
		log.Err(err).Str("column", column).Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("column", column).Msg("error executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.HashedPassword); err != nil {
			log.Err(err).Msg("error scanning user rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// DeactivateUser moves the account row from the active partition to the
// deactivated partition. Both statements run in a single transaction so
// concurrent reads never observe the account in both partitions.
func (r *userRepository) DeactivateUser(ctx context.Context, userID string) error {
	return r.moveUser(ctx, userID, copyUserToDeactivated, deleteActiveUser)
}

// ReactivateUser moves the account row back to the active partition.
func (r *userRepository) ReactivateUser(ctx context.Context, userID string) error {
	return r.moveUser(ctx, userID, copyUserToActive, deleteDeactivatedUser)
}

func (r *userRepository) moveUser(ctx context.Context, userID, copyQuery, deleteQuery string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, copyQuery, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error copying user between partitions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error deleting user from source partition")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error committing partition move")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
