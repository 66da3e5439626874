// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

// Package utils provides general-purpose helper utilities used across the
// application: the bearer token codec, the Authorization grammar parser,
// password hashing, context keys, and HTTP response helpers.
package utils

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wicket-proxy/wicket/models"
)

// ErrInvalidToken is returned by [Codec.Decode] for every token that cannot
// be verified. Signature failures, malformed envelopes and bad transport
// encoding are deliberately indistinguishable at this layer.
var ErrInvalidToken = errors.New("invalid token")

// Codec issues and verifies opaque bearer tokens.
//
// A token is an HMAC-SHA256 signed JWT carrying the identity claim, wrapped
// in URL-safe base64 so the value travels cleanly in HTTP headers. The token
// is not a capability on its own: the session cache must confirm it on every
// request.
type Codec struct {
	secret []byte
}

// NewCodec constructs a Codec signing with the given process-wide secret.
// An empty secret is permitted (the caller is expected to have warned loudly
// about it at startup).
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs claim into a transport-safe bearer token string.
func (c *Codec) Issue(claim models.Claim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   claim.UserID,
		"username": claim.Username,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return base64.URLEncoding.EncodeToString([]byte(signed)), nil
}

// Decode verifies tokenString and extracts the embedded identity claim.
// Any failure — bad base64, bad signature, wrong algorithm, missing claims —
// is reported as [ErrInvalidToken].
func (c *Codec) Decode(tokenString string) (models.Claim, error) {
	raw, err := base64.URLEncoding.DecodeString(tokenString)
	if err != nil {
		return models.Claim{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Claim{}, ErrInvalidToken
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return models.Claim{}, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return models.Claim{}, ErrInvalidToken
	}

	return models.Claim{UserID: userID, Username: username}, nil
}
