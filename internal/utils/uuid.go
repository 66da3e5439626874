// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package utils

import "github.com/google/uuid"

// NewUserID mints an opaque stable identifier for a newly created user.
// UUIDv7 keeps identifiers roughly time-ordered; if generation fails the
// random v4 form is used instead.
func NewUserID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewProbeKey returns a unique throwaway key for readiness probes.
func NewProbeKey() string {
	return "health-" + uuid.NewString()
}
