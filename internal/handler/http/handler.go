// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

// Package http implements the HTTP transport layer of the proxy: the auth
// surface under /auth/, the identity-injecting pass-through relay, and the
// websocket tunnel. Authentication, internal-host gating, tracing and
// request logging are all handled here before anything reaches the upstream
// or the service layer.
package http

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/wicket-proxy/wicket/internal/config"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/service"
)

type Handler struct {
	services *service.Services

	proxiedHost   string
	websocketMode bool

	// allowedHosts is the compiled full-match pattern for hosts permitted
	// to call internal-only endpoints. nil means nobody is.
	allowedHosts *regexp.Regexp

	client   *resty.Client
	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	allowedHosts, err := cfg.AllowedHostPattern()
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	// The relay passes responses through verbatim: no parsing, no redirect
	// chasing. Redirects belong to the client, so 3xx responses are handed
	// back as-is.
	client := resty.New().
		SetDoNotParseResponse(true).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		proxiedHost:   cfg.Proxy.ProxiedHost,
		websocketMode: cfg.Proxy.WebsocketMode,
		allowedHosts:  allowedHosts,
		client:        client,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			// The proxy is the origin check: every upgrade is authenticated
			// by the first frame, so cross-origin handshakes are admitted.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger: logger,
	}, nil
}
