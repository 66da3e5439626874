// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

// Package config provides configuration loading, merging, and validation
// facilities for the proxy.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
