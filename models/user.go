// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package models

// User represents an account row in the user store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque stable identifier of the user. It is minted once
	// at creation time and survives deactivate/reactivate cycles.
	UserID string `json:"userId"`

	// Username is the unique, lower-cased login name of the user.
	Username string `json:"username"`

	// HashedPassword is the KDF output stored for credential verification.
	// It MUST never be serialized into API responses.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table holding active users.
func (u User) TableName() string {
	return "users"
}

// Claim returns the identity claim derived from the user record.
func (u User) Claim() Claim {
	return Claim{UserID: u.UserID, Username: u.Username}
}
