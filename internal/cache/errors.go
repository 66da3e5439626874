// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package cache

import "errors"

// ErrCacheMiss is returned by [Cache.Get] when the requested key does not
// exist. Callers should match it with [errors.Is]; any other error means the
// cache backend itself failed.
var ErrCacheMiss = errors.New("cache miss")
