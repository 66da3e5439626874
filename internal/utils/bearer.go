// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package utils

import (
	"errors"
	"strings"
	"unicode"
)

// Sentinel errors returned by [BearerToken]. Callers should match them with
// [errors.Is]; all of them mean the same thing to the client: 401.
var (
	// ErrEmptyAuthorization is returned when the authorization value is empty
	// or contains only whitespace.
	ErrEmptyAuthorization = errors.New("empty authorization value")

	// ErrNotBearer is returned when the scheme before the token is not the
	// single word "bearer" (case-insensitive).
	ErrNotBearer = errors.New("authorization scheme is not bearer")
)

// BearerToken extracts the token from an Authorization-style value.
//
// The grammar: after trimming surrounding whitespace, the token is everything
// after the last run of whitespace, and the part before that run must be a
// whole-word, case-insensitive match of "bearer". This admits
// "Bearer t", "  BEARER   t  " and "bEaReR t", and rejects "Bear t",
// "Bearert" and "B e a r e r t".
//
// The same grammar is applied to the Authorization HTTP header and to the
// first frame of a WebSocket session.
func BearerToken(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmptyAuthorization
	}

	cut := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		// No whitespace at all: there is no scheme/token split.
		return "", ErrNotBearer
	}

	scheme := strings.TrimSpace(trimmed[:cut])
	token := trimmed[cut+1:]

	if !strings.EqualFold(scheme, "bearer") {
		return "", ErrNotBearer
	}

	return token, nil
}
