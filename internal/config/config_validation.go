// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants before it is used.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Proxy.ProxiedHost == "" {
		return ErrMissingProxiedHost
	}

	if _, err := cfg.AllowedHostPattern(); err != nil {
		return ErrInvalidAllowedHosts
	}

	return nil
}
