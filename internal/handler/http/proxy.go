// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"io"
	"net/http"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/utils"
)

// blockedResponseHeaders are never copied back from the upstream: the
// relay re-frames the body itself, so hop-by-hop framing headers and the
// upstream's Etag would only mislead the client.
var blockedResponseHeaders = map[string]struct{}{
	"Content-Length":    {},
	"Transfer-Encoding": {},
	"Etag":              {},
}

// relay forwards an authenticated request to the upstream and streams the
// response back.
//
// The upstream sees the original method, URI, headers and body, plus the
// USER_ID and USERNAME identity headers derived from the session — the
// upstream never sees or parses the token itself. GET and DELETE are
// forwarded without a body.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claim, ok := utils.ClaimFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := h.client.R().SetContext(ctx)
	for name, values := range r.Header {
		req.Header[name] = values
	}
	// Direct map assignment keeps the exact key casing on the wire; the
	// upstream contract is case-sensitive about these two.
	req.Header["USER_ID"] = []string{claim.UserID}
	req.Header["USERNAME"] = []string{claim.Username}

	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		req.SetBody(r.Body)
	}

	resp, err := req.Execute(r.Method, "http://"+h.proxiedHost+r.URL.RequestURI())
	if err != nil {
		log.Err(err).Str("uri", r.RequestURI).Msg("upstream request failed")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	body := resp.RawBody()
	defer body.Close()

	for name, values := range resp.Header() {
		if _, blocked := blockedResponseHeaders[http.CanonicalHeaderKey(name)]; blocked {
			continue
		}
		w.Header()[name] = values
	}
	w.WriteHeader(resp.StatusCode())

	if _, err := io.Copy(w, body); err != nil {
		log.Err(err).Msg("error streaming upstream response")
	}
}
