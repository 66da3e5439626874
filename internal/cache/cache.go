// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

// Package cache provides the shared session cache used to bind bearer
// tokens to identities. The cache is the source of truth for token
// liveness: deleting a session entry revokes the token everywhere,
// including other replicas sharing the same backend.
package cache

import "context"

// Cache is a minimal string key-value contract over the shared session
// store. Implementations must be safe for concurrent use and atomic at the
// single-key level.
type Cache interface {
	// Get returns the value stored under key, or ErrCacheMiss when the key
	// is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Del removes the given keys. Deleting an absent key is not an error.
	Del(ctx context.Context, keys ...string) error
}
