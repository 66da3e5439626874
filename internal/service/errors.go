// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for every authentication
	// failure: unknown username, wrong password, or deactivated account.
	// The failure modes are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned by Resolve for every token failure:
	// missing bearer scheme, unknown token, bad signature, or an identity
	// mismatch between the token and the cached session.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
