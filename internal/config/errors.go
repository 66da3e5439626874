// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingProxiedHost indicates that no upstream host was configured.
	// The proxy has nowhere to forward requests and refuses to start.
	ErrMissingProxiedHost = errors.New("no proxied host configured")
	// ErrInvalidAllowedHosts indicates that one of the ALLOWED_HOSTS
	// entries is not a valid regular expression.
	ErrInvalidAllowedHosts = errors.New("invalid allowed hosts configuration")
)
