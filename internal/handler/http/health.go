// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"net/http"

	"github.com/wicket-proxy/wicket/internal/logger"
)

// live answers as soon as the process serves traffic. It touches no
// dependency on purpose: liveness means "do not restart me", nothing more.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ready answers 200 only when both backing stores respond. The session
// cache is probed with a throwaway write-then-delete, the user store with a
// search guaranteed to match nothing.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.SessionService.Probe(ctx); err != nil {
		log.Err(err).Msg("readiness probe failed on session cache")
		http.Error(w, "Failed to connect to Redis", http.StatusServiceUnavailable)
		return
	}

	if err := h.services.UserService.Probe(ctx); err != nil {
		log.Err(err).Msg("readiness probe failed on user store")
		http.Error(w, "Failed to connect to Postgres", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
