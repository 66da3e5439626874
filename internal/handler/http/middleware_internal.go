// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"net"
	"net/http"

	"github.com/wicket-proxy/wicket/internal/logger"
)

// internalOnly gates the admin endpoints behind the allowed hosts pattern.
//
// The request Host, with any port stripped, must fully match one of the
// configured patterns. Everybody else gets 404 — not 403 — so outside
// callers cannot even learn that the endpoint exists.
func (h *Handler) internalOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		host := requestHost(r)
		if h.allowedHosts == nil || !h.allowedHosts.MatchString(host) {
			log.Warn().
				Str("host", host).
				Str("uri", r.RequestURI).
				Msg("internal endpoint access attempted from disallowed host")
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestHost returns the request Host with any port stripped.
func requestHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}

	return host
}
