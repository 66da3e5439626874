// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package models

// Claim is the identity payload bound to a bearer token.
//
// The same structure is signed into the token envelope and stored as JSON in
// the session cache under the token key. On every authenticated request both
// copies are compared; any divergence invalidates the request. The JSON field
// names are part of the wire contract and must not change.
type Claim struct {
	// UserID is the opaque stable identifier of the authenticated user.
	UserID string `json:"userId"`

	// Username is the lower-cased login name of the authenticated user.
	Username string `json:"username"`
}

// Equal reports whether two claims carry the same identity.
func (c Claim) Equal(other Claim) bool {
	return c.UserID == other.UserID && c.Username == other.Username
}
