// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package utils

import (
	"context"

	"github.com/wicket-proxy/wicket/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that may
// use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimCtxKey is the key under which the authenticated identity claim is
// stored in the request context by the bearer middleware.
var ClaimCtxKey = contextKey("claim")

// TokenCtxKey is the key under which the raw bearer token of the current
// request is stored in the request context by the bearer middleware.
var TokenCtxKey = contextKey("token")

// ClaimFromContext retrieves the authenticated claim from the context.
// ok is false when no bearer middleware ran for this request.
func ClaimFromContext(ctx context.Context) (models.Claim, bool) {
	claim, ok := ctx.Value(ClaimCtxKey).(models.Claim)
	return claim, ok
}

// TokenFromContext retrieves the raw bearer token from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok
}
