// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, username, password)
    VALUES ($1, $2, $3);`

	findUserByUsername = `SELECT user_id, username, password
    FROM users
    WHERE username = $1;`

	updateUserPassword = `UPDATE users SET password = $1
    WHERE user_id = $2;`

	// Deactivation moves the row between partitions inside one transaction.
	copyUserToDeactivated = `INSERT INTO deactivated_users (user_id, username, password)
    SELECT user_id, username, password FROM users WHERE user_id = $1;`
	deleteActiveUser = `DELETE FROM users WHERE user_id = $1;`

	copyUserToActive = `INSERT INTO users (user_id, username, password)
    SELECT user_id, username, password FROM deactivated_users WHERE user_id = $1;`
	deleteDeactivatedUser = `DELETE FROM deactivated_users WHERE user_id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// searchUsersQuery builds a SELECT over the active partition matching the
// given column against any of the provided values.
func searchUsersQuery(column string, values []string) (string, []any, error) {
	return psql.
		Select("user_id", "username", "password").
		From("users").
		Where(sq.Eq{column: values}).
		ToSql()
}
