// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wicket-proxy/wicket/internal/cache"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/utils"
	"github.com/wicket-proxy/wicket/models"
)

// sessionService is the concrete implementation of SessionService backed by
// the shared session cache and the token codec.
type sessionService struct {
	sessions cache.Cache
	codec    *utils.Codec
	logger   *logger.Logger
}

// NewSessionService constructs a SessionService over the given cache and
// token codec.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(sessions cache.Cache, codec *utils.Codec, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		codec:    codec,
		logger:   logger,
	}
}

// Start binds claim to a bearer token.
//
// When the user already holds a session (user id key present in the cache)
// the existing token is returned, so repeated logins do not rotate tokens
// out from under other clients of the same account.
func (s *sessionService) Start(ctx context.Context, claim models.Claim) (string, error) {
	log := logger.FromContext(ctx)

	existing, err := s.sessions.Get(ctx, claim.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Err(err).Str("userID", claim.UserID).Msg("session lookup failed")
		return "", fmt.Errorf("session lookup failed: %w", err)
	}

	token, err := s.codec.Issue(claim)
	if err != nil {
		log.Err(err).Str("userID", claim.UserID).Msg("token issue failed")
		return "", fmt.Errorf("token issue failed: %w", err)
	}

	claimJSON, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("claim marshal failed: %w", err)
	}

	if err := s.sessions.Set(ctx, token, string(claimJSON)); err != nil {
		log.Err(err).Str("userID", claim.UserID).Msg("session write failed")
		return "", fmt.Errorf("session write failed: %w", err)
	}
	if err := s.sessions.Set(ctx, claim.UserID, token); err != nil {
		log.Err(err).Str("userID", claim.UserID).Msg("session write failed")
		return "", fmt.Errorf("session write failed: %w", err)
	}

	return token, nil
}

// Resolve authenticates an Authorization-style value against the session
// cache.
//
// The token must parse under the bearer grammar, exist in the cache, carry a
// verifiable signature, and match the cached identity exactly. Any failure
// collapses to ErrUnauthorized; infrastructure failures are wrapped and
// surfaced as-is so callers can answer 500 instead of 401.
func (s *sessionService) Resolve(ctx context.Context, authorization string) (models.Claim, string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.BearerToken(authorization)
	if err != nil {
		return models.Claim{}, "", ErrUnauthorized
	}

	cached, err := s.sessions.Get(ctx, token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return models.Claim{}, "", ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.Claim{}, "", fmt.Errorf("session lookup failed: %w", err)
	}

	claim, err := s.codec.Decode(token)
	if err != nil {
		return models.Claim{}, "", ErrUnauthorized
	}

	var cachedClaim models.Claim
	if err := json.Unmarshal([]byte(cached), &cachedClaim); err != nil {
		log.Err(err).Msg("cached session entry is not valid claim JSON")
		return models.Claim{}, "", ErrUnauthorized
	}

	if !claim.Equal(cachedClaim) {
		log.Error().
			Str("tokenUserID", claim.UserID).
			Str("cachedUserID", cachedClaim.UserID).
			Msg("token identity diverged from cached session")
		return models.Claim{}, "", ErrUnauthorized
	}

	return claim, token, nil
}

// Alive reports whether token still has a session entry. Used on long-lived
// connections to notice revocation mid-stream.
func (s *sessionService) Alive(ctx context.Context, token string) (bool, error) {
	_, err := s.sessions.Get(ctx, token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session lookup failed: %w", err)
	}

	return true, nil
}

// Revoke deletes both session keys of the given user. The token key is
// resolved through the user id key first, so revocation works with nothing
// but the user id in hand.
func (s *sessionService) Revoke(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	token, err := s.sessions.Get(ctx, userID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("session lookup failed")
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if err := s.sessions.Del(ctx, token, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("session delete failed")
		return fmt.Errorf("session delete failed: %w", err)
	}

	return nil
}

// Probe round-trips a throwaway key through the cache. The key is random so
// concurrent probes from several replicas never collide.
func (s *sessionService) Probe(ctx context.Context) error {
	key := utils.NewProbeKey()

	if err := s.sessions.Set(ctx, key, "health"); err != nil {
		return fmt.Errorf("session cache probe failed: %w", err)
	}
	if err := s.sessions.Del(ctx, key); err != nil {
		return fmt.Errorf("session cache probe failed: %w", err)
	}

	return nil
}
